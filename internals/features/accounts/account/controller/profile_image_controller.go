package controller

import (
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ojtsystem_backend/internals/features/accounts/account/service"
	helper "ojtsystem_backend/internals/helpers"
	"ojtsystem_backend/internals/helpers/storage"
	authmw "ojtsystem_backend/internals/middlewares/auth"
)

type ProfileImageController struct {
	DB      *gorm.DB
	Storage storage.ObjectStorage
}

func NewProfileImageController(db *gorm.DB, store storage.ObjectStorage) *ProfileImageController {
	return &ProfileImageController{DB: db, Storage: store}
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Upload replaces the signed-in staff member's profile image. The new object
// is written first; the old one is deleted best-effort after the row points
// at the new URL.
func (pc *ProfileImageController) Upload(c *fiber.Ctx) error {
	accountID := authmw.AccountID(c)
	role, ok := service.ValidRole(authmw.AccountType(c))
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized.")
	}

	fileHeader, err := c.FormFile("profile_image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please choose an image to upload.")
	}
	data, err := readUpload(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not read the uploaded image.")
	}

	acct, err := service.FindByID(pc.DB, role, accountID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account no longer exists.")
	}

	key := storage.ProfileImageKey(string(role), accountID, fileHeader.Filename)
	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	key, contentType, data = storage.MaybeConvertWebP(key, contentType, data)

	publicURL, err := pc.Storage.Upload(c.UserContext(), key, contentType, data)
	if err != nil {
		log.Printf("[ERROR] profile upload for %s %s: %v", role, accountID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Image upload failed. Please try again.")
	}

	if _, err := service.UpdateColumns(pc.DB, role, accountID, map[string]any{
		"profile_path": publicURL,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not save the profile image.")
	}

	if acct.ProfilePath != nil && *acct.ProfilePath != "" {
		if oldKey := pc.Storage.KeyFromPublicURL(*acct.ProfilePath); oldKey != "" {
			if err := pc.Storage.Delete(c.UserContext(), oldKey); err != nil {
				log.Printf("[WARN] delete old profile image %s: %v", oldKey, err)
			}
		}
	}

	return helper.JsonOK(c, "Profile image updated.", fiber.Map{"profile_path": publicURL})
}

// Remove clears the profile image reference. Storage delete failures are
// tolerated; the row is cleared regardless.
func (pc *ProfileImageController) Remove(c *fiber.Ctx) error {
	accountID := authmw.AccountID(c)
	role, ok := service.ValidRole(authmw.AccountType(c))
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized.")
	}

	acct, err := service.FindByID(pc.DB, role, accountID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account no longer exists.")
	}

	if acct.ProfilePath != nil && *acct.ProfilePath != "" {
		if key := pc.Storage.KeyFromPublicURL(*acct.ProfilePath); key != "" {
			if err := pc.Storage.Delete(c.UserContext(), key); err != nil {
				log.Printf("[WARN] delete profile image %s: %v", key, err)
			}
		}
	}

	if _, err := service.UpdateColumns(pc.DB, role, accountID, map[string]any{
		"profile_path": nil,
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not remove the profile image.")
	}
	return helper.JsonOK(c, "Profile image removed.", nil)
}
