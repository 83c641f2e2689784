package repositories

import "pressroom/app/models"

// UserRepository defines the interface for user data access.
// Create marks the first user ever stored as the site admin.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id int) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id int) error
}

// SearchRepository defines the interface for search counter access.
// UserID 0 addresses the site-wide aggregate.
type SearchRepository interface {
	Increment(userID int, term string) error
	Top(userID, n int) ([]*models.SearchTerm, error)
}
