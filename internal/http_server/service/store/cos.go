// Package store
package store

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/tencentyun/cos-go-sdk-v5"
)

type TencentCosStoreService struct {
	logger     log.LoggerInterface
	localStore StoreServiceInterface
	config     *config.HttpServerStore
	endpoint   *url.URL
	client     *cos.Client
}

func NewTencentCosStoreService(
	logger log.LoggerInterface,
	config *config.HttpServerStore,
	localStore StoreServiceInterface,
) *TencentCosStoreService {
	service := &TencentCosStoreService{logger: logger, localStore: localStore, config: config}
	bucketUrl, _ := url.Parse(fmt.Sprintf("https://%s.cos.%s.myqcloud.com", config.Bucket, strings.ToLower(config.Region)))
	serviceUrl, _ := url.Parse(fmt.Sprintf("https://cos.%s.myqcloud.com", strings.ToLower(config.Region)))
	baseUrl := &cos.BaseURL{BucketURL: bucketUrl, ServiceURL: serviceUrl}
	service.client = cos.NewClient(baseUrl, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  config.AccessId,
			SecretKey: config.AccessKey,
		},
	})
	if config.CdnDomain != "" {
		service.endpoint, _ = url.Parse(config.CdnDomain)
	} else {
		service.endpoint = service.client.BaseURL.BucketURL
	}
	return service
}

func (store *TencentCosStoreService) SaveAttachmentFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	storeInfo, res := store.localStore.SaveAttachmentFile(file)
	if res != nil {
		return nil, res
	}

	storeInfo.RemotePath = strings.Replace(filepath.Join(store.config.RemoteStorePath, storeInfo.FileName), "\\", "/", -1)

	reader, err := file.Open()
	if err != nil {
		store.logger.ErrorF("TencentCosStoreService.SaveAttachmentFile open form file error: %v", err)
		return nil, &ErrFileUploadFail
	}

	_, err = store.client.Object.Put(context.Background(), storeInfo.RemotePath, reader, nil)
	if err != nil {
		store.logger.ErrorF("TencentCosStoreService.SaveAttachmentFile upload attachment to remote storage error: %v", err)
		return nil, &ErrFileUploadFail
	}
	return storeInfo, nil
}

func (store *TencentCosStoreService) DeleteAttachmentFile(file string) (*StoreInfo, error) {
	storeInfo, err := store.localStore.DeleteAttachmentFile(file)
	if err != nil {
		return nil, err
	}
	storeInfo.RemotePath = strings.Replace(filepath.Join(store.config.RemoteStorePath, storeInfo.FileName), "\\", "/", -1)

	_, err = store.client.Object.Delete(context.Background(), storeInfo.RemotePath)
	if err != nil {
		store.logger.ErrorF("TencentCosStoreService.DeleteAttachmentFile delete attachment from remote storage error: %v", err)
		return nil, err
	}
	return storeInfo, nil
}

func (store *TencentCosStoreService) SaveUploadAttachment(req *RequestUploadFile) *ApiResponse[ResponseUploadFile] {
	if req.Identity == nil {
		return NewApiResponse[ResponseUploadFile](&ErrAuthRequired, Unsatisfied, nil)
	}
	storeInfo, res := store.SaveAttachmentFile(req.File)
	if res != nil {
		return NewApiResponse[ResponseUploadFile](res, Unsatisfied, nil)
	}
	accessUrl, err := url.JoinPath(store.endpoint.String(), storeInfo.RemotePath)
	if err != nil {
		return NewApiResponse[ResponseUploadFile](&ErrFilePathFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessUploadFile, Unsatisfied, &ResponseUploadFile{
		FileSize:   req.File.Size,
		AccessPath: accessUrl,
	})
}
