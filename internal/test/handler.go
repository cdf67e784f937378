package test

import (
	"github.com/gin-gonic/gin"
)

// HandleClassify runs the intent classifier without calling any provider.
// @Summary Test intent classification
// @Description Classify a message and report the matched keyword and location without contacting upstream providers
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Message to classify"
// @Success 200 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, ClassifyResponse{
			Success: false,
			Error:   "Invalid request",
			Details: err.Error(),
		})
		return
	}

	out := h.router.Classify(ctx, req.Text)

	h.l.Infof(ctx, "internal.test.HandleClassify: text=%q intent=%s location=%q",
		req.Text, out.Intent, out.Location)

	c.JSON(200, ClassifyResponse{
		Success:        true,
		Intent:         string(out.Intent),
		MatchedKeyword: out.MatchedKeyword,
		Location:       out.Location,
		HasLocation:    out.HasLocation,
		Text:           req.Text,
	})
}
