package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/base/delivery"
	"github.com/x-xyz/bnsapi/domain"
	"github.com/x-xyz/bnsapi/domain/bns"
)

type handler struct {
	lookup bns.LookupUsecase
}

// New registers the bns routes, getMiddlewares only wrap the single item GET routes
func New(e *echo.Echo, lookup bns.LookupUsecase, getMiddlewares ...echo.MiddlewareFunc) {
	h := &handler{lookup}

	g := e.Group("/bns")
	g.GET("/lookup/:domain", h.lookupOne, getMiddlewares...)
	g.POST("/lookup", h.lookupBatch)
	g.GET("/reverse-lookup/:banano_address", h.reverseLookupOne, getMiddlewares...)
	g.POST("/reverse-lookup", h.reverseLookupBatch)
}

type batchParams struct {
	Items []string `validate:"max=256"`
}

// bindBatch reads a bare JSON array of strings
func bindBatch(c echo.Context) ([]string, error) {
	items := []string{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &items); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	if err := c.Validate(&batchParams{Items: items}); err != nil {
		return nil, domain.ErrBadParamInput
	}
	return items, nil
}

// lookupOne
//
//	@Summary		Resolve a name
//	@Description	Resolve a BNS name to its banano address
//	@Tags			bns
//	@Produce		json
//	@Param			domain	path		string	true	"name without namespace"	example(wtp)
//	@Success		200		{object}	object{bananoAddress=string}
//	@Failure		404
//	@Failure		500
//	@Router			/bns/lookup/{domain} [get]
func (h *handler) lookupOne(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	addr, err := h.lookup.Lookup(ctx, c.Param("domain"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeRawJsonResp(c, http.StatusOK, map[string]string{
		"bananoAddress": addr.String(),
	})
}

// lookupBatch
//
//	@Summary		Resolve names
//	@Description	Resolve many BNS names at once, unknown names map to an empty string
//	@Tags			bns
//	@Accept			json
//	@Produce		json
//	@Param			names	body		[]string	true	"names without namespace"
//	@Success		200		{object}	map[string]string
//	@Failure		400
//	@Router			/bns/lookup [post]
func (h *handler) lookupBatch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	names, err := bindBatch(c)
	if err != nil {
		ctx.WithField("err", err).Warn("bindBatch failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.lookup.BatchLookup(ctx, names)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeRawJsonResp(c, http.StatusOK, res)
}

// reverseLookupOne
//
//	@Summary		Reverse resolve an address
//	@Description	Find the BNS name owning a banano address
//	@Tags			bns
//	@Produce		json
//	@Param			banano_address	path		string	true	"banano address"	example(ban_1nz45e65wn8uouw6eh1sbjpcobj1dk4x7o5w9w1sjgdpc8b361txr4h1qtoj)
//	@Success		200				{object}	object{domain=string}
//	@Failure		404
//	@Router			/bns/reverse-lookup/{banano_address} [get]
func (h *handler) reverseLookupOne(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name, err := h.lookup.ReverseLookup(ctx, domain.BananoAddress(c.Param("banano_address")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeRawJsonResp(c, http.StatusOK, map[string]string{
		"domain": name,
	})
}

// reverseLookupBatch
//
//	@Summary		Reverse resolve addresses
//	@Description	Find the names owning many banano addresses, unknown addresses map to an empty string
//	@Tags			bns
//	@Accept			json
//	@Produce		json
//	@Param			addresses	body		[]string	true	"banano addresses"
//	@Success		200			{object}	map[string]string
//	@Failure		400
//	@Router			/bns/reverse-lookup [post]
func (h *handler) reverseLookupBatch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	addresses, err := bindBatch(c)
	if err != nil {
		ctx.WithField("err", err).Warn("bindBatch failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.lookup.BatchReverseLookup(ctx, domain.ToBananoAddresses(addresses))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeRawJsonResp(c, http.StatusOK, res)
}
