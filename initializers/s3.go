package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	filestorage "company-portal-backend/lib/file-storage"
	s3client "company-portal-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	if err = s3client.MakeBucket(context.Background(), minioClient); err != nil {
		log.WithError(err).Error("Ошибка создания бакета для документов")
	}

	filestorage.NewInstance(minioClient)
	log.Info("S3 клиент успешно инициализирован")
}
