// Package controller
package controller

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FileControllerInterface interface {
	UploadAttachment(ctx echo.Context) error
}

type FileController struct {
	logger       log.LoggerInterface
	storeService StoreServiceInterface
}

func NewFileController(logger log.LoggerInterface, storeService StoreServiceInterface) *FileController {
	return &FileController{
		logger:       logger,
		storeService: storeService,
	}
}

func (controller *FileController) UploadAttachment(ctx echo.Context) error {
	if file, err := ctx.FormFile("file"); err != nil {
		controller.logger.ErrorF("FileController.UploadAttachment form file error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	} else {
		data := &RequestUploadFile{File: file, Identity: GetIdentity(ctx)}
		return controller.storeService.SaveUploadAttachment(data).Response(ctx)
	}
}
