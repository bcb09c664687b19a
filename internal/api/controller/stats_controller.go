package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/repository"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/service"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/validator"

	"github.com/gin-gonic/gin"
)

// StatsController handles scoreboard HTTP requests.
type StatsController struct {
	statsService service.StatsService
}

// NewStatsController creates a new StatsController.
func NewStatsController(statsService service.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// List returns every player's row.
func (sc *StatsController) List(c *gin.Context) {
	stats, err := sc.statsService.ListStats(c.Request.Context())
	if err != nil {
		sc.fail(c, err)
		return
	}
	if stats == nil {
		stats = []models.PlayerStats{}
	}

	c.JSON(http.StatusOK, stats)
}

// Get returns the row of the player named in the path.
func (sc *StatsController) Get(c *gin.Context) {
	player, ok := playerParam(c)
	if !ok {
		return
	}

	stats, err := sc.statsService.GetStats(c.Request.Context(), player)
	if err != nil {
		sc.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Update increments one counter of the player named in the path.
func (sc *StatsController) Update(c *gin.Context) {
	player, ok := playerParam(c)
	if !ok {
		return
	}

	var req models.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AbortWithError(c, response.BadRequest("Malformed request body"))
		return
	}

	counter, err := sc.statsService.RecordResult(c.Request.Context(), player, &req)
	if err != nil {
		sc.fail(c, err)
		return
	}

	response.StatusResponse(c, "Updated "+string(counter))
}

// playerParam rejects anything that is not a player mark before it reaches the store.
func playerParam(c *gin.Context) (string, bool) {
	player := c.Param("player")
	if !validator.IsMark(player) {
		response.AbortWithError(c, response.BadRequest("Player does not exist"))
		return "", false
	}
	return player, true
}

func (sc *StatsController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrPlayerNotFound):
		response.AbortWithError(c, response.BadRequest("Player does not exist"))
	case errors.Is(err, service.ErrNoCounter):
		response.AbortWithError(c, response.BadRequest("One of win, loss or draw must be set"))
	default:
		slog.ErrorContext(c.Request.Context(), "Scoreboard request failed",
			"player.id", c.Param("player"),
			"http.route", c.FullPath(),
			"error", err,
		)
		response.AbortWithError(c, response.InternalError())
	}
}
