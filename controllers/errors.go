package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cppla/huxiang/services"
	"github.com/cppla/huxiang/utils"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(wireName)
	}
}

// wireName reports a field by its json or form tag so validation errors use request names.
func wireName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

type errorInfo struct {
	status int
	code   int
}

// serviceErrors maps service sentinels to HTTP status and business code.
var serviceErrors = map[error]errorInfo{
	services.ErrInvalidInput:          {http.StatusBadRequest, 40010},
	services.ErrInvalidStatus:         {http.StatusBadRequest, 40011},
	services.ErrInvalidCredentials:    {http.StatusUnauthorized, 40110},
	services.ErrForbidden:             {http.StatusForbidden, 40310},
	services.ErrUserInactive:          {http.StatusForbidden, 40311},
	services.ErrUserNotFound:          {http.StatusNotFound, 40410},
	services.ErrResourceNotFound:      {http.StatusNotFound, 40420},
	services.ErrPostNotFound:          {http.StatusNotFound, 40430},
	services.ErrParentCommentNotFound: {http.StatusNotFound, 40431},
	services.ErrUsernameTaken:         {http.StatusConflict, 40910},
	services.ErrEmailTaken:            {http.StatusConflict, 40911},
}

// fail renders err. Unknown errors are logged and answered with a generic 500.
func fail(ctx *gin.Context, err error) {
	for sentinel, info := range serviceErrors {
		if errors.Is(err, sentinel) {
			utils.Error(ctx, info.status, info.code, sentinel.Error())
			return
		}
	}
	utils.Logger.Error("request failed",
		zap.String("path", ctx.FullPath()),
		zap.String("request_id", ctx.GetString(utils.RequestIDKey)),
		zap.Error(err),
	)
	utils.Error(ctx, http.StatusInternalServerError, 50000, "internal server error")
}

// bindFailed renders a binding error as a structured 400.
func bindFailed(ctx *gin.Context, code int, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]utils.FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, utils.FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		utils.ValidationError(ctx, code, "validation failed", fields)
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		utils.ValidationError(ctx, code, "validation failed", []utils.FieldError{{Field: typeErr.Field, Rule: "type"}})
		return
	}
	utils.Error(ctx, http.StatusBadRequest, code, "invalid request payload")
}

// parseID reads a positive numeric path parameter.
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
