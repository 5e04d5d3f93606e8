package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ojtsystem_backend/internals/configs"
)

// ObjectStorage is the profile-image store. Upload returns the public URL to
// persist on the account row; Delete failures are tolerated by callers (the
// local reference is cleared regardless).
type ObjectStorage interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyFromPublicURL maps a stored public URL back to its object key, or ""
	// when the URL does not belong to this store.
	KeyFromPublicURL(publicURL string) string
}

// New selects the backend from STORAGE_BACKEND (supabase | oss).
func New() (ObjectStorage, error) {
	switch configs.StorageBackend {
	case "oss":
		return NewOSSStorage()
	case "supabase", "":
		return NewSupabaseStorage()
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", configs.StorageBackend)
	}
}

var allowedExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// SafeExt lowercases the extension and falls back to .png for anything
// outside jpg/jpeg/png/webp.
func SafeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExts[ext]; ok {
		return ext
	}
	return ".png"
}

// ProfileImageKey builds the object key for a staff profile upload:
// staff/{role}/{account_id}/{random}.{ext}
func ProfileImageKey(role, accountID, filename string) string {
	return fmt.Sprintf("staff/%s/%s/%s%s",
		role, accountID, strings.ReplaceAll(uuid.NewString(), "-", ""), SafeExt(filename))
}
