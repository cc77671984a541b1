package helper

import (
	"log"
	"os"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// ExtractPublicID recovers the public ID from a Cloudinary secure URL so an
// old asset can be destroyed on replace.
func ExtractPublicID(url string) string {
	parts := strings.Split(url, "/upload/")
	if len(parts) != 2 {
		return ""
	}
	path := parts[1]
	// strip the version segment (v1234567890/)
	if idx := strings.Index(path, "/"); idx != -1 && strings.HasPrefix(path, "v") {
		path = path[idx+1:]
	}
	if idx := strings.LastIndex(path, "."); idx != -1 {
		path = path[:idx]
	}
	return path
}
