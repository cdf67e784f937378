package http

import (
	"github.com/gin-gonic/gin"

	"weather-chatbot/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Routes the message to the weather service or the LLM and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "User message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSendResp(output))
}
