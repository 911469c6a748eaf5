package handler

import (
	"social-im/internal/dto"
	"social-im/pkg/contract"
	"social-im/pkg/response"

	"github.com/gin-gonic/gin"
)

// Contracts 输出全部请求/响应契约文档
func Contracts(c *gin.Context) {
	response.Success(c, gin.H{"contracts": contract.Catalog(dto.Schemas()...)})
}
