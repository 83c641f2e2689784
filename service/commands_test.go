package service

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Run the function
	f()

	// Restore stdout and close pipe
	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func mockStdin(input string, f func()) {
	oldStdin := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r

	// Write input in a goroutine to avoid blocking
	go func() {
		w.Write([]byte(input))
		w.Close()
	}()

	// Run the function
	f()

	// Restore stdin
	os.Stdin = oldStdin
}

// chdirTemp moves the working directory to a fresh temp dir so the
// relative data/ paths the commands use stay out of the source tree.
func chdirTemp(t *testing.T) string {
	tmpDir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { os.Chdir(orig) })
	return tmpDir
}

func seedDB(t *testing.T, dataDir string) {
	opts := badger.DefaultOptions(dataDir).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("post:1"), []byte(`{"title":"Seeded Post"}`))
	}))
	require.NoError(t, db.Close())
}

func readKey(t *testing.T, dataDir, key string) string {
	opts := badger.DefaultOptions(dataDir).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	defer db.Close()

	var value string
	require.NoError(t, db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	}))
	return value
}

func TestHandleDBCommand(t *testing.T) {
	chdirTemp(t)

	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectedExit   int
	}{
		{
			name:           "no arguments",
			args:           []string{},
			expectedOutput: "Usage: pressroom db",
			expectedExit:   1,
		},
		{
			name:           "help command",
			args:           []string{"help"},
			expectedOutput: "Usage: pressroom db",
			expectedExit:   0,
		},
		{
			name:           "unknown command",
			args:           []string{"unknown"},
			expectedOutput: "Unknown db command: unknown",
			expectedExit:   1,
		},
		{
			name:           "restore without file",
			args:           []string{"restore"},
			expectedOutput: "Error: backup file path required for restore",
			expectedExit:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var exitCode int
			oldOsExit := osExit
			defer func() { osExit = oldOsExit }()
			osExit = func(code int) {
				exitCode = code
				panic("exit")
			}

			output := captureOutput(func() {
				defer func() {
					if r := recover(); r != nil {
						if r != "exit" {
							panic(r)
						}
					}
				}()
				HandleDBCommand(tt.args)
			})

			assert.Contains(t, output, tt.expectedOutput)
			if tt.expectedExit > 0 {
				assert.Equal(t, tt.expectedExit, exitCode)
			}
		})
	}
}

func TestInitDB(t *testing.T) {
	tmpDir := chdirTemp(t)
	dataDir := filepath.Join(tmpDir, "data", "badger")

	t.Run("initialize new database", func(t *testing.T) {
		output := captureOutput(func() {
			initDB(dataDir)
		})

		assert.Contains(t, output, "Database initialized successfully")
		assert.DirExists(t, dataDir)
	})

	t.Run("initialize existing database", func(t *testing.T) {
		output := captureOutput(func() {
			initDB(dataDir)
		})

		assert.Contains(t, output, "Database already exists")
	})
}

func TestClean(t *testing.T) {
	tmpDir := chdirTemp(t)
	dataDir := filepath.Join(tmpDir, "data", "badger")

	t.Run("clean non-existent database", func(t *testing.T) {
		output := captureOutput(func() {
			clean(dataDir)
		})

		assert.Contains(t, output, "Database is already clean")
	})

	t.Run("clean existing database - confirmed", func(t *testing.T) {
		seedDB(t, dataDir)

		var output string
		mockStdin("y\n", func() {
			output = captureOutput(func() {
				clean(dataDir)
			})
		})

		assert.Contains(t, output, "Database cleaned successfully")
		assert.NoDirExists(t, dataDir)
	})

	t.Run("clean existing database - cancelled", func(t *testing.T) {
		seedDB(t, dataDir)

		var output string
		mockStdin("n\n", func() {
			output = captureOutput(func() {
				clean(dataDir)
			})
		})

		assert.Contains(t, output, "Operation cancelled")
		assert.DirExists(t, dataDir)
	})
}

func TestBackupRestore(t *testing.T) {
	tmpDir := chdirTemp(t)
	dataDir := filepath.Join(tmpDir, "data", "badger")

	t.Run("backup non-existent database", func(t *testing.T) {
		output := captureOutput(func() {
			backup(dataDir)
		})

		assert.Contains(t, output, "No database exists to backup")
	})

	t.Run("restore non-existent backup", func(t *testing.T) {
		output := captureOutput(func() {
			restore(dataDir, "nonexistent.db.gz")
		})

		assert.Contains(t, output, "Backup file does not exist")
	})

	t.Run("backup and restore round trip", func(t *testing.T) {
		seedDB(t, dataDir)

		output := captureOutput(func() {
			backup(dataDir)
		})
		assert.Contains(t, output, "Database backed up successfully")

		backups, err := filepath.Glob(filepath.Join("data", "backups", "backup_*.db.gz"))
		require.NoError(t, err)
		require.Len(t, backups, 1)

		// Wipe the database and restore it from the backup
		require.NoError(t, os.RemoveAll(dataDir))
		output = captureOutput(func() {
			restore(dataDir, backups[0])
		})
		assert.Contains(t, output, "Database restored successfully")

		assert.Equal(t, `{"title":"Seeded Post"}`, readKey(t, dataDir, "post:1"))
	})
}
