package response

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功时直接返回数据本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 失败返回 {error}
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}

// Error 按错误目录映射状态码，未知错误只记日志，对外返回通用信息
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	if isDecodeError(err) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	if code, ok := service.ErrorMap[err]; ok {
		Fail(c, code, err.Error())
		return
	}
	for known, code := range service.ErrorMap {
		if errors.Is(err, known) {
			if code == http.StatusInternalServerError {
				break
			}
			Fail(c, code, err.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "unhandled error", "path", c.FullPath(), "err", err)
	Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
}

// isDecodeError 请求体解码失败。gin 默认用 encoding/json，带 go_json 标签编译时换成 goccy/go-json
func isDecodeError(err error) bool {
	var stdTypeError *stdjson.UnmarshalTypeError
	var stdSyntaxError *stdjson.SyntaxError
	var typeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	return errors.As(err, &stdTypeError) || errors.As(err, &stdSyntaxError) ||
		errors.As(err, &typeError) || errors.As(err, &syntaxError) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
