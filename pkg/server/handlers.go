package server

import (
	"net/http"

	"edgeorigin/pkg/models"
	"edgeorigin/pkg/routing"

	"github.com/labstack/echo/v4"
)

// ResolveHandler resolves a request path to an origin record.
// GET /resolve?path=<path>&pop=<code> or GET /resolve?path=<path>&region=<eu|us>.
//
// Resolution is total: any combination of parameters, including none,
// yields a 200 with a concrete origin. An explicit valid region wins over
// a POP code; with neither, the configured default POP applies.
func (s *Server) ResolveHandler(ctx echo.Context) error {
	path := ctx.QueryParam("path")

	var resolution routing.Resolution
	if region, ok := routing.ParseRegion(ctx.QueryParam("region")); ok {
		resolution = s.resolver.Resolve(path, region)
	} else {
		pop := ctx.QueryParam("pop")
		if pop == "" {
			pop = s.defaultPOP
		}
		resolution = s.resolver.ResolveForPOP(path, pop)
	}

	observeResolution(resolution)
	return ctx.JSON(http.StatusOK, resolution)
}

// OriginsHandler dumps the full origin catalog.
// GET /origins.
func (s *Server) OriginsHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string][]routing.Entry{
		"entries": s.resolver.Catalog().Entries(),
	})
}

// PopListHandler lists every POP code in the table with its region.
// GET /pops.
func (s *Server) PopListHandler(ctx echo.Context) error {
	codes := routing.POPs()
	pops := make([]models.PopResponse, 0, len(codes))
	for _, code := range codes {
		pops = append(pops, models.PopResponse{
			Code:   code,
			Region: string(routing.RegionForPOP(code)),
			Known:  true,
		})
	}
	return ctx.JSON(http.StatusOK, models.PopListResponse{Pops: pops})
}

// PopHandler reports the region assignment of a single POP code. Unknown
// codes are reported with the default-region fallback, not an error.
// GET /pops/:code.
func (s *Server) PopHandler(ctx echo.Context) error {
	code := ctx.Param("code")
	return ctx.JSON(http.StatusOK, models.PopResponse{
		Code:   code,
		Region: string(routing.RegionForPOP(code)),
		Known:  routing.KnownPOP(code),
	})
}

// HealthHandler reports liveness.
// GET /healthz.
func (s *Server) HealthHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}

// VersionHandler reports the build version.
// GET /version.
func (s *Server) VersionHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, models.VersionResponse{Version: s.version})
}
