package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore héberge les images des produits ajoutés depuis le panneau admin
type ImageStore struct {
	client   *minio.Client
	endpoint string
	bucket   string
	secure   bool
}

func ConnectMinio(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*ImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connexion MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("vérification bucket MinIO: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("création bucket MinIO: %w", err)
		}
		log.Println("🪣 Bucket créé :", bucket)
	}

	log.Println("✅ Connecté à MinIO :", endpoint)
	return &ImageStore{client: client, endpoint: endpoint, bucket: bucket, secure: useSSL}, nil
}

// Upload envoie le fichier et retourne l'URL à saisir dans le champ image
func (s *ImageStore) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := ObjectName(file.Filename, time.Now())
	_, err = s.client.PutObject(ctx, s.bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectName, err)
	}

	return s.publicURL(objectName), nil
}

// SignedURL génère une URL temporaire pour une image de ce bucket
func (s *ImageStore) SignedURL(ctx context.Context, imageURL string, ttl time.Duration) (string, error) {
	key := strings.TrimPrefix(imageURL, s.publicURL(""))
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, ttl, make(url.Values))
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *ImageStore) publicURL(objectName string) string {
	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName)
}

// ObjectName range l'image sous products/ avec un préfixe horodaté
func ObjectName(filename string, now time.Time) string {
	return fmt.Sprintf("products/%d-%s", now.UnixNano(), path.Base(filename))
}
