// Package store
package store

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
)

type LocalStoreService struct {
	logger log.LoggerInterface
	config *config.HttpServerStore
}

func NewLocalStoreService(logger log.LoggerInterface, config *config.HttpServerStore) *LocalStoreService {
	return &LocalStoreService{
		logger: logger,
		config: config,
	}
}

func (store *LocalStoreService) SaveAttachmentFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	storeInfo, res := ATTACHMENTS.GenerateStoreInfo(store.config.FileLimit.AttachmentLimit, file)
	if res != nil {
		return nil, res
	}
	if !storeInfo.StoreInServer {
		return storeInfo, nil
	}
	src, err := file.Open()
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveAttachmentFile open file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	defer func(src multipart.File) {
		_ = src.Close()
	}(src)
	dst, err := os.OpenFile(storeInfo.FilePath, os.O_WRONLY|os.O_CREATE, global.DefaultFilePermissions)
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveAttachmentFile create file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	defer func(dst *os.File) {
		_ = dst.Close()
	}(dst)
	_, err = io.Copy(dst, src)
	if err != nil {
		store.logger.ErrorF("LocalStoreService.SaveAttachmentFile copy file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	return storeInfo, nil
}

func (store *LocalStoreService) DeleteAttachmentFile(file string) (*StoreInfo, error) {
	storeInfo := NewStoreInfoForDelete(ATTACHMENTS, store.config.FileLimit.AttachmentLimit)

	storeInfo.FileName = filepath.Join(store.config.FileLimit.AttachmentLimit.StorePrefix, filepath.Base(file))
	storeInfo.FilePath = filepath.Join(store.config.FileLimit.AttachmentLimit.RootPath, storeInfo.FileName)
	storeInfo.RemotePath = strings.Replace(storeInfo.FileName, "\\", "/", -1)

	if !storeInfo.StoreInServer {
		return storeInfo, nil
	}

	if err := os.Remove(storeInfo.FilePath); err != nil {
		store.logger.ErrorF("LocalStoreService.DeleteAttachmentFile remove file error: %v", err)
		return nil, err
	}
	return storeInfo, nil
}

func (store *LocalStoreService) SaveUploadAttachment(req *RequestUploadFile) *ApiResponse[ResponseUploadFile] {
	if req.Identity == nil {
		return NewApiResponse[ResponseUploadFile](&ErrAuthRequired, Unsatisfied, nil)
	}
	storeInfo, res := store.SaveAttachmentFile(req.File)
	if res != nil {
		return NewApiResponse[ResponseUploadFile](res, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessUploadFile, Unsatisfied, &ResponseUploadFile{
		FileSize:   req.File.Size,
		AccessPath: storeInfo.RemotePath,
	})
}
