package handler

import (
	"fmt"

	"github.com/Akash4693/TradeX-backend/internal/errdef"

	"github.com/gin-gonic/gin"
)

func DataBinder(c *gin.Context, req interface{}) error {
	if c.ContentType() != "application/json" && c.ContentType() != "multipart/form-data" {
		reason := fmt.Sprintf("%s only accepts content of type application/json or multipart/form-data", c.FullPath())
		err := errdef.NewUnsupportedMediaType("%s", reason)
		_ = c.Error(err)
		return err
	}

	if err := c.ShouldBind(req); err != nil {
		boundErr := errdef.NewBadRequest("error binding data: %v", err)
		_ = c.Error(boundErr)
		return boundErr
	}

	return nil
}
