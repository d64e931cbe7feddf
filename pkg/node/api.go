package node

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lioia/corpus-pagerank/pkg/utils"
)

type ApiServerImpl struct {
	Node    *Node
	Results *utils.SafeMap[string, Result]
}

// NewApiServer exposes the node over HTTP:
//
//	GET  /health
//	POST /rank      Job -> Result
//	GET  /rank/:id  Result of an already ranked job
func NewApiServer(n *Node) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s := &ApiServerImpl{Node: n, Results: utils.NewSafeMap[string, Result]()}
	e.GET("/health", s.Health)
	e.POST("/rank", s.Rank)
	e.GET("/rank/:id", s.GetResult)
	return e
}

func (s *ApiServerImpl) Health(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (s *ApiServerImpl) Rank(c echo.Context) error {
	var job Job
	if err := c.Bind(&job); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not decode job")
	}
	utils.ServerLog("HTTP rank request for job %q (%d pages)", job.Id, len(job.Corpus))
	result, err := s.Node.Compute(job)
	if err != nil {
		if isInvalidJob(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	s.Results.Put(result.Id, result)
	return c.JSON(http.StatusOK, result)
}

func (s *ApiServerImpl) GetResult(c echo.Context) error {
	result, ok := s.Results.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown job")
	}
	return c.JSON(http.StatusOK, result)
}
