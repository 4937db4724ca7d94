package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
)

// SaveUpload persists an uploaded audio file into dir as
// {jobID}_{original-filename} and returns the stored path.
func SaveUpload(file *multipart.FileHeader, dir, jobID string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	dst := filepath.Join(dir, jobID+"_"+filepath.Base(file.Filename))
	if err := saveMultipartFile(file, dst); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return dst, nil
}

func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.ReadFrom(src)
	return err
}
