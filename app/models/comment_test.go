package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentValidation(t *testing.T) {
	tests := []struct {
		name    string
		comment *Comment
		wantErr bool
	}{
		{
			name: "valid comment",
			comment: &Comment{
				ID:        1,
				PostID:    1,
				AuthorID:  1,
				Content:   "A perfectly fine comment",
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "missing post ID",
			comment: &Comment{
				ID:        1,
				AuthorID:  1,
				Content:   "A comment",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "missing author",
			comment: &Comment{
				ID:        1,
				PostID:    1,
				Content:   "A comment",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "content too long",
			comment: &Comment{
				ID:        1,
				PostID:    1,
				AuthorID:  1,
				Content:   strings.Repeat("a", 1001),
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "zero creation time",
			comment: &Comment{
				ID:       1,
				PostID:   1,
				AuthorID: 1,
				Content:  "A comment",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.comment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommentSetPost(t *testing.T) {
	comment := &Comment{ID: 1, AuthorID: 1, Content: "A comment"}

	t.Run("set post", func(t *testing.T) {
		post := &Post{ID: 7, Title: "Test Post", Body: "Test Body"}
		err := comment.SetPost(post)
		assert.NoError(t, err)
		assert.Equal(t, 7, comment.PostID)
		assert.Equal(t, post, comment.Post)
	})

	t.Run("set nil post", func(t *testing.T) {
		err := comment.SetPost(nil)
		assert.Error(t, err)
	})
}
