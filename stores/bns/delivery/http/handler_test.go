package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/bnsapi/base/validator"
	"github.com/x-xyz/bnsapi/domain"
	"github.com/x-xyz/bnsapi/domain/bns/mocks"
	"github.com/x-xyz/bnsapi/middleware"
)

const wtpAddress = "ban_1nz45e65wn8uouw6eh1sbjpcobj1dk4x7o5w9w1sjgdpc8b361txr4h1qtoj"

type handlerSuite struct {
	suite.Suite

	e      *echo.Echo
	lookup *mocks.LookupUsecase
}

func (s *handlerSuite) SetupTest() {
	s.lookup = &mocks.LookupUsecase{}
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(govalidator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.lookup)
}

func (s *handlerSuite) TearDownTest() {
	s.lookup.AssertExpectations(s.T())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) do(method, path, body string) (int, map[string]interface{}) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	res := map[string]interface{}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res), rec.Body.String())
	return rec.Code, res
}

func (s *handlerSuite) TestLookupOne() {
	s.lookup.On("Lookup", mock.Anything, "wtp").Return(domain.BananoAddress(wtpAddress), nil).Once()
	s.lookup.On("Lookup", mock.Anything, "nobody").Return(domain.BananoAddress(""), domain.ErrNotFound).Once()
	s.lookup.On("Lookup", mock.Anything, "down").Return(domain.BananoAddress(""), errors.New("backend unavailable")).Once()

	code, res := s.do(http.MethodGet, "/bns/lookup/wtp", "")
	s.Equal(http.StatusOK, code)
	s.Equal(map[string]interface{}{"bananoAddress": wtpAddress}, res)

	code, res = s.do(http.MethodGet, "/bns/lookup/nobody", "")
	s.Equal(http.StatusNotFound, code)
	s.Equal("fail", res["status"])

	code, _ = s.do(http.MethodGet, "/bns/lookup/down", "")
	s.Equal(http.StatusInternalServerError, code)
}

func (s *handlerSuite) TestLookupBatch() {
	s.lookup.On("BatchLookup", mock.Anything, []string{"wtp", "unknown-domain"}).Return(map[string]string{
		"wtp":            wtpAddress,
		"unknown-domain": "",
	}, nil).Once()

	code, res := s.do(http.MethodPost, "/bns/lookup", `["wtp", "unknown-domain"]`)
	s.Equal(http.StatusOK, code)
	s.Equal(map[string]interface{}{"wtp": wtpAddress, "unknown-domain": ""}, res)
}

func (s *handlerSuite) TestLookupBatchBadBody() {
	code, res := s.do(http.MethodPost, "/bns/lookup", `{"wtp": 1}`)
	s.Equal(http.StatusBadRequest, code)
	s.Equal(domain.ErrInvalidJsonFormat.Error(), res["data"])

	code, _ = s.do(http.MethodPost, "/bns/lookup", `["wtp"`)
	s.Equal(http.StatusBadRequest, code)

	code, res = s.do(http.MethodPost, "/bns/lookup", `[`+strings.Repeat(`"a",`, 256)+`"a"]`)
	s.Equal(http.StatusBadRequest, code)
	s.Equal(domain.ErrBadParamInput.Error(), res["data"])
}

func (s *handlerSuite) TestReverseLookupOne() {
	s.lookup.On("ReverseLookup", mock.Anything, domain.BananoAddress(wtpAddress)).Return("wtp", nil).Once()
	s.lookup.On("ReverseLookup", mock.Anything, domain.BananoAddress("not_an_address")).Return("", domain.ErrNotFound).Once()

	code, res := s.do(http.MethodGet, "/bns/reverse-lookup/"+wtpAddress, "")
	s.Equal(http.StatusOK, code)
	s.Equal(map[string]interface{}{"domain": "wtp"}, res)

	code, _ = s.do(http.MethodGet, "/bns/reverse-lookup/not_an_address", "")
	s.Equal(http.StatusNotFound, code)
}

func (s *handlerSuite) TestReverseLookupBatch() {
	s.lookup.On("BatchReverseLookup", mock.Anything, []domain.BananoAddress{wtpAddress, "not_an_address"}).Return(map[string]string{
		wtpAddress:       "wtp",
		"not_an_address": "",
	}, nil).Once()

	code, res := s.do(http.MethodPost, "/bns/reverse-lookup", `["`+wtpAddress+`", "not_an_address"]`)
	s.Equal(http.StatusOK, code)
	s.Equal(map[string]interface{}{wtpAddress: "wtp", "not_an_address": ""}, res)
}
