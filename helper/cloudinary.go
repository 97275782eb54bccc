package helper

import (
	"context"
	"cruise_manager/config"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

func InitCloudinary(s *config.Settings) (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(s.CloudinaryCloudName, s.CloudinaryAPIKey, s.CloudinaryAPISecret)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary init")
	}
	return cld, nil
}

// UploadImage stores an image under folder and returns its secure URL.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, file io.Reader, folder string) (string, error) {
	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     fmt.Sprintf("%s_%d", folder, time.Now().UnixNano()),
		ResourceType: "image",
	})
	if err != nil {
		return "", errors.Wrap(err, "cloudinary upload")
	}
	if result.Error.Message != "" {
		return "", errors.New(result.Error.Message)
	}
	return result.SecureURL, nil
}

// PublicIDFromURL returns "<folder>/<public-id>" of a Cloudinary delivery URL.
func PublicIDFromURL(url string) string {
	parts := strings.Split(url, "/")
	n := len(parts)
	if n < 4 {
		return ""
	}
	publicID := strings.Join(parts[n-2:n], "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}

func DeleteImage(ctx context.Context, cld *cloudinary.Cloudinary, url string) error {
	publicID := PublicIDFromURL(url)
	if publicID == "" {
		return errors.New("not a cloudinary url")
	}
	result, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return errors.Wrap(err, "cloudinary destroy")
	}
	if result.Error.Message != "" {
		return errors.New(result.Error.Message)
	}
	return nil
}
