package documenthandler

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"company-portal-backend/db"
	documentstore "company-portal-backend/lib/document/store"
	filestorage "company-portal-backend/lib/file-storage"
	"company-portal-backend/models"
	docapimodels "company-portal-backend/models/api/document"
	dbmodels "company-portal-backend/models/db"
)

type UploadInfo struct {
	Name        string
	ContentType string
	Category    string
	Tags        []string
	UploadedBy  string
	Size        int64
}

type Provider interface {
	GetList() (list []docapimodels.DocumentView, err error)
	Upload(ctx context.Context, info UploadInfo, fileReader io.Reader) (view docapimodels.DocumentView, err error)
	Download(ctx context.Context, id string) (body []byte, name, contentType string, err error)
	Delete(ctx context.Context, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       documentstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
	}
}

type impl struct {
	store       documentstore.Provider
	fileStorage filestorage.Provider
}

func (i impl) GetList() (list []docapimodels.DocumentView, err error) {
	recList, err := i.store.GetList()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка документов")
		return nil, err
	}
	list = make([]docapimodels.DocumentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Upload(ctx context.Context, info UploadInfo, fileReader io.Reader) (view docapimodels.DocumentView, err error) {
	logger := log.WithField("file_name", info.Name)
	// контент кладем в s3 под собственным ключом, имя файла храним в БД
	objectKey := uuid.NewString() + filepath.Ext(info.Name)
	err = i.fileStorage.UploadFile(ctx, objectKey, info.ContentType, fileReader, info.Size)
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки файла в хранилище")
		return docapimodels.DocumentView{}, err
	}
	rec := dbmodels.Document{
		Name:       info.Name,
		FilePath:   objectKey,
		FileType:   info.ContentType,
		Category:   info.Category,
		Tags:       info.Tags,
		UploadedBy: info.UploadedBy,
		FileSize:   info.Size,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения документа")
		// файл без записи в БД не нужен
		if delErr := i.fileStorage.DeleteFile(ctx, objectKey); delErr != nil {
			logger.WithError(delErr).Error("ошибка удаления файла из хранилища")
		}
		return docapimodels.DocumentView{}, err
	}
	logger.
		WithField("rec_id", created.ID).
		Info("загружен документ")
	return created.ToModel(), nil
}

func (i impl) Download(ctx context.Context, id string) (body []byte, name, contentType string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		if err != models.ErrNotFound {
			log.WithField("rec_id", id).WithError(err).Error("ошибка поиска документа")
		}
		return nil, "", "", err
	}
	body, err = i.fileStorage.GetFile(ctx, rec.FilePath)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка чтения файла из хранилища")
		return nil, "", "", err
	}
	return body, rec.Name, rec.FileType, nil
}

func (i impl) Delete(ctx context.Context, id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if err = i.store.Delete(id); err != nil {
		logger.WithError(err).Error("ошибка удаления документа")
		return err
	}
	// файл удаляем после записи, ошибка не фатальна
	if err = i.fileStorage.DeleteFile(ctx, rec.FilePath); err != nil {
		logger.WithError(err).Error("ошибка удаления файла из хранилища")
	}
	logger.Info("удален документ")
	return nil
}
