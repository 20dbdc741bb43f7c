package apiclient

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/models"
	"saude-connect/internal/app/services/shared/ratelimiter"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/exceptions"
	"saude-connect/internal/pkg/utils"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type apiClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Session    contracts.SessionService
	Limiter    *ratelimiter.OutboundLimiter
	Log        *zap.Logger
}

// exchange is one finished HTTP round trip with its body already read.
type exchange struct {
	statusCode int
	header     http.Header
	body       []byte
}

func (e *exchange) succeeded() bool {
	return e.statusCode >= 200 && e.statusCode < 300
}

// NewAPIClient builds the client every usecase talks through. A nil
// httpClient gets a plain one; calls are bounded only by their context.
func NewAPIClient(baseUrl string, httpClient *http.Client, session contracts.SessionService, limiter *ratelimiter.OutboundLimiter, logger *zap.Logger) contracts.APIClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &apiClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: httpClient,
		Session:    session,
		Limiter:    limiter,
		Log:        logger,
	}
}

func (c *apiClient) Do(ctx context.Context, call models.APICall, out interface{}) (bool, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	c.Log.Info("apiClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, call.Operation),
	)

	route, err := LookupRoute(call.Operation)
	if err != nil {
		return false, err
	}

	result, err := c.execute(ctx, requestID, route, call, constvars.MIMEApplicationJSON)
	if err != nil {
		return false, c.degrade(requestID, route, err)
	}

	if !result.succeeded() {
		return false, c.fail(requestID, route, result)
	}

	if out != nil && len(bytes.TrimSpace(result.body)) > 0 {
		if err := json.Unmarshal(result.body, out); err != nil {
			c.Log.Error("apiClient.Do error decoding response",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOperationKey, route.Operation),
				zap.Error(err),
			)
			return false, c.degrade(requestID, route, exceptions.ErrDecodeResponse(err, route.Operation))
		}
	}

	c.Log.Info("apiClient.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, route.Operation),
		zap.Int(constvars.LoggingStatusCodeKey, result.statusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(result.body)),
	)
	return true, nil
}

// DoRaw returns the body undecoded, for binary downloads. A nil response
// with a nil error is an empty result.
func (c *apiClient) DoRaw(ctx context.Context, call models.APICall) (*models.RawResponse, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	c.Log.Info("apiClient.DoRaw called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, call.Operation),
	)

	route, err := LookupRoute(call.Operation)
	if err != nil {
		return nil, err
	}

	result, err := c.execute(ctx, requestID, route, call, "*/*")
	if err != nil {
		return nil, c.degrade(requestID, route, err)
	}
	if !result.succeeded() {
		return nil, c.fail(requestID, route, result)
	}

	raw := &models.RawResponse{
		StatusCode:  result.statusCode,
		ContentType: result.header.Get(constvars.HeaderContentType),
		Body:        result.body,
	}
	if disposition := result.header.Get(constvars.HeaderContentDisposition); disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			raw.Filename = params["filename"]
		}
	}

	c.Log.Info("apiClient.DoRaw succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, route.Operation),
		zap.Int(constvars.LoggingResponseLengthKey, len(raw.Body)),
	)
	return raw, nil
}

// execute covers token lookup, throttling, request building and sending.
func (c *apiClient) execute(ctx context.Context, requestID string, route Route, call models.APICall, accept string) (*exchange, error) {
	var token string
	if route.RequiresAuth {
		var ok bool
		token, ok = c.Session.Token(ctx)
		if !ok {
			c.Log.Info("apiClient.execute no session for authenticated route",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOperationKey, route.Operation),
			)
			return nil, exceptions.ErrAuthRequired(nil)
		}
	}

	if err := c.Limiter.Wait(ctx, route.Operation); err != nil {
		c.Log.Error("apiClient.execute throttle wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, route.Operation),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	path, err := route.BuildPath(call.PathParams)
	if err != nil {
		return nil, err
	}
	target := c.BaseUrl + path
	if len(call.Query) > 0 {
		target += "?" + call.Query.Encode()
	}

	body, contentType, err := c.encodeBody(requestID, route, call)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, route.Method, target, body)
	if err != nil {
		c.Log.Error("apiClient.execute error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, route.Operation),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, accept)
	req.Header.Set(constvars.HeaderUserAgent, constvars.AppUserAgent)
	req.Header.Set(constvars.HeaderRequestID, requestID)
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("apiClient.execute error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, route.Operation),
			zap.String(constvars.LoggingMethodKey, route.Method),
			zap.String(constvars.LoggingPathKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("apiClient.execute error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, route.Operation),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err)
	}

	c.Log.Debug("apiClient.execute response received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, route.Method),
		zap.String(constvars.LoggingPathKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return &exchange{statusCode: resp.StatusCode, header: resp.Header, body: respBody}, nil
}

func (c *apiClient) encodeBody(requestID string, route Route, call models.APICall) (io.Reader, string, error) {
	useForm := route.Body == BodyMultipart || (route.Body == BodyJSONOrMultipart && call.Form != nil)
	if useForm {
		form := call.Form
		if form == nil {
			form = &models.MultipartForm{}
		}
		body, contentType, err := encodeMultipart(form)
		if err != nil {
			c.Log.Error("apiClient.encodeBody error building multipart body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOperationKey, route.Operation),
				zap.Error(err),
			)
			return nil, "", exceptions.ErrBuildMultipartBody(err)
		}
		return body, contentType, nil
	}

	if route.Body == BodyNone || call.JSON == nil {
		return nil, "", nil
	}

	requestJSON, err := json.Marshal(call.JSON)
	if err != nil {
		c.Log.Error("apiClient.encodeBody error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, route.Operation),
			zap.Error(err),
		)
		return nil, "", exceptions.ErrCannotMarshalJSON(err)
	}
	return bytes.NewReader(requestJSON), constvars.MIMEApplicationJSON, nil
}

func (c *apiClient) fail(requestID string, route Route, result *exchange) error {
	err := classifyFailure(route, result.statusCode, result.body)
	if err == nil {
		c.Log.Info("apiClient.fail treating failure as empty result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, route.Operation),
			zap.Int(constvars.LoggingStatusCodeKey, result.statusCode),
		)
		return nil
	}
	c.Log.Error("apiClient.fail backend returned error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, route.Operation),
		zap.Int(constvars.LoggingStatusCodeKey, result.statusCode),
		zap.Error(err),
	)
	return err
}

// degrade swallows local and transport failures on routes that read
// reference data. Missing credentials are always reported.
func (c *apiClient) degrade(requestID string, route Route, err error) error {
	if !route.EmptyOnFailure || exceptions.IsKind(err, exceptions.KindAuthRequired) {
		return err
	}
	c.Log.Warn("apiClient.degrade returning empty result",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, route.Operation),
		zap.Error(err),
	)
	return nil
}
