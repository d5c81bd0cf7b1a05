// Package config
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
)

type HttpServerStore struct {
	StoreType       int                        `json:"store_type"` // 0: ローカル保存, 1: Aliyun OSS, 2: Tencent COS
	Region          string                     `json:"region"`
	Bucket          string                     `json:"bucket"`
	AccessId        string                     `json:"access_id"`
	AccessKey       string                     `json:"access_key"`
	CdnDomain       string                     `json:"cdn_domain"`
	UseInternalUrl  bool                       `json:"use_internal_url"`
	LocalStorePath  string                     `json:"local_store_path"`
	RemoteStorePath string                     `json:"remote_store_path"`
	FileLimit       *HttpServerStoreFileLimits `json:"file_limit"`
}

func defaultHttpServerStore() *HttpServerStore {
	return &HttpServerStore{
		StoreType:       0,
		Region:          "",
		Bucket:          "",
		AccessId:        "",
		AccessKey:       "",
		CdnDomain:       "",
		UseInternalUrl:  false,
		LocalStorePath:  "uploads",
		RemoteStorePath: "",
		FileLimit:       defaultHttpServerStoreFileLimits(),
	}
}

func (config *HttpServerStore) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := config.FileLimit.checkValid(logger); result.IsFail() {
		return result
	}
	if config.LocalStorePath == "" {
		return ValidFail(errors.New("invalid json field http_server.store.local_store_path, path cannot be empty"))
	}
	if err := os.MkdirAll(filepath.Clean(config.LocalStorePath), global.DefaultDirectoryPermission); err != nil {
		return ValidFailWith(fmt.Errorf("error while creating local store path(%s)", config.LocalStorePath), err)
	}
	if result := config.FileLimit.CreateDir(logger, config.LocalStorePath); result.IsFail() {
		return result
	}
	switch config.StoreType {
	case 0:
		if result := config.FileLimit.CheckLocalStore(logger, true); result.IsFail() {
			return result
		}
	case 1, 2:
		if result := config.FileLimit.CheckLocalStore(logger, false); result.IsFail() {
			return result
		}
		if config.Region == "" {
			return ValidFail(errors.New("invalid json field http_server.store.region, region cannot be empty"))
		}
		if config.Bucket == "" {
			return ValidFail(errors.New("invalid json field http_server.store.bucket, bucket cannot be empty"))
		}
		if config.AccessId == "" {
			return ValidFail(errors.New("invalid json field http_server.store.access_id, access_id cannot be empty"))
		}
		if config.AccessKey == "" {
			return ValidFail(errors.New("invalid json field http_server.store.access_key, access_key cannot be empty"))
		}
	default:
		return ValidFail(fmt.Errorf("invalid json field http_server.store.store_type %d, only support 0, 1, 2", config.StoreType))
	}
	return ValidPass()
}
