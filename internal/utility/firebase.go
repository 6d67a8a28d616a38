package utility

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var (
	firebaseApp    *firebase.App
	firebaseBucket string
)

// findProjectDir tìm thư mục gốc dự án (thư mục chứa config/env)
func findProjectDir() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return currentDir, nil
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("không tìm thấy thư mục gốc dự án")
		}
		currentDir = parentDir
	}
}

// InitFirebase khởi tạo Firebase Admin SDK với Storage bucket
func InitFirebase(projectID, credentialsPath, storageBucket string) error {
	// Resolve đường dẫn credentials: absolute dùng trực tiếp, relative tính từ thư mục gốc dự án
	if !filepath.IsAbs(credentialsPath) {
		projectDir, err := findProjectDir()
		if err != nil {
			return err
		}
		credentialsPath = filepath.Join(projectDir, credentialsPath)
	}
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return fmt.Errorf("không tìm thấy file credentials firebase: %s", credentialsPath)
	}

	ctx := context.Background()
	conf := &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: storageBucket,
	}
	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return fmt.Errorf("khởi tạo firebase app thất bại: %w", err)
	}

	firebaseApp = app
	firebaseBucket = storageBucket
	return nil
}

// UploadImage tải ảnh lên Firebase Storage và trả về URL công khai.
// objectPath là đường dẫn object trong bucket, ví dụ "OM/Product12.jpg"
func UploadImage(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	if firebaseApp == nil {
		return "", fmt.Errorf("firebase chưa được khởi tạo")
	}

	client, err := firebaseApp.Storage(ctx)
	if err != nil {
		return "", fmt.Errorf("lấy storage client thất bại: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return "", fmt.Errorf("lấy bucket mặc định thất bại: %w", err)
	}

	obj := bucket.Object(objectPath)

	writeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	w := obj.NewWriter(writeCtx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("ghi dữ liệu ảnh thất bại: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("hoàn tất upload ảnh thất bại: %w", err)
	}

	// Cho phép đọc công khai để client hiển thị ảnh trực tiếp
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("đặt quyền công khai cho ảnh thất bại: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", firebaseBucket, objectPath), nil
}

// DeleteImage xóa ảnh khỏi Firebase Storage
func DeleteImage(ctx context.Context, objectPath string) error {
	if firebaseApp == nil {
		return fmt.Errorf("firebase chưa được khởi tạo")
	}

	client, err := firebaseApp.Storage(ctx)
	if err != nil {
		return fmt.Errorf("lấy storage client thất bại: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return fmt.Errorf("lấy bucket mặc định thất bại: %w", err)
	}

	if err := bucket.Object(objectPath).Delete(ctx); err != nil {
		return fmt.Errorf("xóa ảnh thất bại: %w", err)
	}
	return nil
}
