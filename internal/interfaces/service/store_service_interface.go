// Package service
package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"
	"time"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
)

var (
	ErrFilePathFail       = ApiStatus{"FILE_PATH_FAIL", "ファイルのアップロードに失敗しました。", ServerInternalError}
	ErrFileSaveFail       = ApiStatus{"FILE_SAVE_FAIL", "ファイルの保存に失敗しました。", ServerInternalError}
	ErrFileUploadFail     = ApiStatus{"FILE_UPLOAD_FAIL", "ファイルのアップロードに失敗しました。", ServerInternalError}
	ErrFileOverSize       = ApiStatus{"FILE_OVER_SIZE", "ファイルサイズが大きすぎます。", BadRequest}
	ErrFileExtUnsupported = ApiStatus{"FILE_EXT_UNSUPPORTED", "対応していないファイル形式です。", BadRequest}
	ErrFileNameIllegal    = ApiStatus{"FILE_NAME_ILLEGAL", "ファイル名が不正です。", BadRequest}
	SuccessUploadFile     = ApiStatus{"UPLOAD_FILE", "ファイルをアップロードしました。", Ok}
)

type FileType int

const (
	ATTACHMENTS FileType = iota
	UNKNOWN
)

// StoreInfo ファイルの保存先情報
type StoreInfo struct {
	FileType      FileType
	FileLimit     *c.HttpServerStoreFileLimit
	RootPath      string
	FilePath      string
	RemotePath    string
	FileName      string
	FileExt       string
	FileContent   *multipart.FileHeader
	StoreInServer bool
}

func NewStoreInfo(fileType FileType, fileLimit *c.HttpServerStoreFileLimit, file *multipart.FileHeader) *StoreInfo {
	return &StoreInfo{
		FileType:      fileType,
		FileLimit:     fileLimit,
		RootPath:      fileLimit.RootPath,
		FilePath:      "",
		FileName:      "",
		RemotePath:    "",
		FileExt:       filepath.Ext(file.Filename),
		FileContent:   file,
		StoreInServer: fileLimit.StoreInServer,
	}
}

// NewStoreInfoForDelete 削除経路ではファイル本文を持たない。
func NewStoreInfoForDelete(fileType FileType, fileLimit *c.HttpServerStoreFileLimit) *StoreInfo {
	return &StoreInfo{
		FileType:      fileType,
		FileLimit:     fileLimit,
		RootPath:      fileLimit.RootPath,
		StoreInServer: fileLimit.StoreInServer,
	}
}

func (fileType FileType) GenerateStoreInfo(fileLimit *c.HttpServerStoreFileLimit, file *multipart.FileHeader) (*StoreInfo, *ApiStatus) {
	if strings.Contains(file.Filename, string(filepath.Separator)) {
		return nil, &ErrFileNameIllegal
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))

	if !slices.Contains(fileLimit.AllowedFileExt, ext) {
		return nil, &ErrFileExtUnsupported
	}

	if file.Size > fileLimit.MaxFileSize {
		return nil, &ErrFileOverSize
	}

	storeInfo := NewStoreInfo(fileType, fileLimit, file)

	storeInfo.FileName = filepath.Join(fileLimit.StorePrefix, fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	storeInfo.FilePath = filepath.Join(fileLimit.RootPath, storeInfo.FileName)
	storeInfo.RemotePath = strings.Replace(storeInfo.FileName, "\\", "/", -1)

	return storeInfo, nil
}

type StoreServiceInterface interface {
	SaveAttachmentFile(file *multipart.FileHeader) (*StoreInfo, *ApiStatus)
	DeleteAttachmentFile(file string) (*StoreInfo, error)
	SaveUploadAttachment(req *RequestUploadFile) *ApiResponse[ResponseUploadFile]
}

type RequestUploadFile struct {
	Identity *Identity
	File     *multipart.FileHeader
}

type ResponseUploadFile struct {
	FileSize   int64  `json:"file_size"`
	AccessPath string `json:"access_path"`
}
