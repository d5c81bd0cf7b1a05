// Package store
package store

import (
	"context"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
)

type ALiYunOssStoreService struct {
	logger     log.LoggerInterface
	localStore StoreServiceInterface
	config     *config.HttpServerStore
	endpoint   *url.URL
	client     *oss.Client
}

func NewALiYunOssStoreService(
	logger log.LoggerInterface,
	config *config.HttpServerStore,
	localStore StoreServiceInterface,
) *ALiYunOssStoreService {
	service := &ALiYunOssStoreService{logger: logger, localStore: localStore, config: config}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewStaticCredentialsProvider(config.AccessId, config.AccessKey)).
		WithRegion(config.Region).
		WithUseInternalEndpoint(config.UseInternalUrl)
	service.client = oss.NewClient(cfg)
	if config.CdnDomain != "" {
		service.endpoint, _ = url.Parse(config.CdnDomain)
	} else {
		service.endpoint, _ = url.Parse(strings.Replace(*cfg.Endpoint, "-internal", "", 1))
	}
	return service
}

func (store *ALiYunOssStoreService) SaveAttachmentFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	storeInfo, res := store.localStore.SaveAttachmentFile(file)
	if res != nil {
		return nil, res
	}

	storeInfo.RemotePath = strings.Replace(filepath.Join(store.config.RemoteStorePath, storeInfo.FileName), "\\", "/", -1)

	reader, err := file.Open()
	if err != nil {
		store.logger.ErrorF("ALiYunOssStoreService.SaveAttachmentFile open form file error: %v", err)
		return nil, &ErrFileUploadFail
	}

	putRequest := &oss.PutObjectRequest{
		Bucket:       oss.Ptr(store.config.Bucket),
		Key:          oss.Ptr(storeInfo.RemotePath),
		StorageClass: oss.StorageClassStandard,
		Body:         reader,
	}

	_, err = store.client.PutObject(context.TODO(), putRequest)

	if err != nil {
		store.logger.ErrorF("ALiYunOssStoreService.SaveAttachmentFile upload attachment to remote storage error: %v", err)
		return nil, &ErrFileUploadFail
	}
	return storeInfo, nil
}

func (store *ALiYunOssStoreService) DeleteAttachmentFile(file string) (*StoreInfo, error) {
	storeInfo, err := store.localStore.DeleteAttachmentFile(file)
	if err != nil {
		return nil, err
	}
	storeInfo.RemotePath = strings.Replace(filepath.Join(store.config.RemoteStorePath, storeInfo.FileName), "\\", "/", -1)
	delRequest := &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(store.config.Bucket),
		Key:    oss.Ptr(storeInfo.RemotePath),
	}
	_, err = store.client.DeleteObject(context.TODO(), delRequest)
	if err != nil {
		store.logger.ErrorF("ALiYunOssStoreService.DeleteAttachmentFile delete attachment from remote storage error: %v", err)
		return nil, err
	}
	return storeInfo, nil
}

func (store *ALiYunOssStoreService) SaveUploadAttachment(req *RequestUploadFile) *ApiResponse[ResponseUploadFile] {
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
