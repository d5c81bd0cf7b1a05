// Package config
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
)

type HttpServerStoreFileLimit struct {
	MaxFileSize    int64    `json:"max_file_size"`
	AllowedFileExt []string `json:"allowed_file_ext"`
	StorePrefix    string   `json:"store_prefix"`
	StoreInServer  bool     `json:"store_in_server"`
	RootPath       string   `json:"-"`
}

func (config *HttpServerStoreFileLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if config.MaxFileSize < 0 {
		return ValidFail(errors.New("invalid json field http_server.store.max_file_size, cannot be negative"))
	}
	return ValidPass()
}

type HttpServerStoreFileLimits struct {
	AttachmentLimit *HttpServerStoreFileLimit `json:"attachment_limit"`
}

func defaultHttpServerStoreFileLimits() *HttpServerStoreFileLimits {
	return &HttpServerStoreFileLimits{
		AttachmentLimit: &HttpServerStoreFileLimit{
			MaxFileSize:    10 * 1024 * 1024,
			AllowedFileExt: []string{".jpg", ".jpeg", ".png", ".pdf"},
			StorePrefix:    "attachments",
			StoreInServer:  true,
		},
	}
}

func (config *HttpServerStoreFileLimits) checkValid(logger log.LoggerInterface) *ValidResult {
	if result := config.AttachmentLimit.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}

func (config *HttpServerStoreFileLimits) CheckLocalStore(_ log.LoggerInterface, localStore bool) *ValidResult {
	if !localStore {
		return ValidPass()
	}
	if !config.AttachmentLimit.StoreInServer {
		return ValidFail(errors.New("when you use local store, store_in_server must be true"))
	}
	return ValidPass()
}

func (config *HttpServerStoreFileLimits) CreateDir(_ log.LoggerInterface, root string) *ValidResult {
	config.AttachmentLimit.RootPath = root
	if config.AttachmentLimit.StoreInServer {
		attachmentPath := filepath.Join(root, config.AttachmentLimit.StorePrefix)
		if err := os.MkdirAll(attachmentPath, global.DefaultDirectoryPermission); err != nil {
			return ValidFailWith(errors.New("error creating the attachment directory"), err)
		}
	}
	return ValidPass()
}
