package utils

import "github.com/gin-gonic/gin"

// FieldError names one failed validation rule on an input field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Success: status < 400,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success returns a standard success response.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, 200, 0, "success", data)
}

// Created returns a 201 success response.
func Created(ctx *gin.Context, message string, data interface{}) {
	Respond(ctx, 201, 0, message, data)
}

// Error returns a standard error response.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}

// ValidationError returns a 400 response listing every failed field rule.
func ValidationError(ctx *gin.Context, code int, message string, errs []FieldError) {
	ctx.JSON(400, JSONResponse{
		Success: false,
		Code:    code,
		Message: message,
		Errors:  errs,
	})
}
