package http

import (
	"github.com/gin-gonic/gin"
)

// processSendReq binds the chat request body. An empty message is valid
// input and gets a canned reply downstream, so there is no required tag.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
