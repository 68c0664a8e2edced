package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var contractYAML []byte

// Contract is the parsed OpenAPI document the API is validated against.
type Contract struct {
	doc    *openapi3.T
	router routers.Router
}

func LoadContract(ctx context.Context) (*Contract, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(contractYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi contract: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi contract: %w", err)
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build contract router: %w", err)
	}

	return &Contract{doc: doc, router: router}, nil
}

// ValidateRequests rejects requests that do not match the contract with 422.
// Paths the contract does not describe are passed through.
func (c *Contract) ValidateRequests() echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := c.router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusUnprocessableEntity, envelope{
					Error:       "request does not match the API contract",
					FieldErrors: contractFieldErrors(err),
				})
			}

			return next(ctx)
		}
	}
}

func contractFieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	collectContractErrors(err, "body", fields)
	return fields
}

func collectContractErrors(err error, field string, fields map[string]string) {
	switch e := err.(type) { //nolint:errorlint // walks the concrete kin-openapi error tree
	case openapi3.MultiError:
		for _, inner := range e {
			collectContractErrors(inner, field, fields)
		}
	case *openapi3filter.RequestError:
		name := field
		if e.Parameter != nil {
			name = e.Parameter.Name
		}
		if e.Err == nil {
			addContractField(fields, name, e.Reason)
			return
		}
		collectContractErrors(e.Err, name, fields)
	case *openapi3.SchemaError:
		name := field
		if pointer := e.JSONPointer(); len(pointer) > 0 {
			name = strings.Join(pointer, ".")
		}
		addContractField(fields, name, e.Reason)
	default:
		addContractField(fields, field, err.Error())
	}
}

func addContractField(fields map[string]string, name, msg string) {
	if existing, ok := fields[name]; ok {
		fields[name] = existing + "; " + msg
		return
	}
	fields[name] = msg
}

var registerDocOnce sync.Once

type contractDoc struct {
	json string
}

func (d contractDoc) ReadDoc() string {
	return d.json
}

// RegisterSwaggerDoc publishes the contract to the swag registry read by the
// swagger UI handler. Only the first call registers.
func (c *Contract) RegisterSwaggerDoc() error {
	data, err := json.Marshal(c.doc)
	if err != nil {
		return fmt.Errorf("encode openapi contract: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, contractDoc{json: string(data)})
	})
	return nil
}
