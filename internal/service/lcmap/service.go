package lcmap

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"strings"

	"github.com/oshokin/lcmap-client/internal/client/lcmap"
	"github.com/oshokin/lcmap-client/internal/logger"
	"github.com/oshokin/lcmap-client/internal/utils"
)

const (
	// statusPath serves the system status.
	statusPath = "/api/status"
	// surfaceReflectancePath is the prefix of Landsat 8 surface reflectance data.
	surfaceReflectancePath = "/api/L1/T/Landsat/8/SurfaceReflectance"
	// tilesPath serves tiles around a point.
	tilesPath = surfaceReflectancePath + "/tiles"
	// rodPath serves the time series of a single point.
	rodPath = surfaceReflectancePath + "/rod"
	// sampleModelPath runs the sample OS process model.
	sampleModelPath = "/api/models/sample/os-process"
)

// Service provides typed access to the LCMAP REST API.
type Service interface {
	// Status returns the system status.
	Status(ctx context.Context) (map[string]any, error)
	// Tiles returns the tiles matching query.
	Tiles(ctx context.Context, query TileQuery) ([]Tile, error)
	// Rod returns the time series of the point in query.
	Rod(ctx context.Context, query TileQuery) ([]RodPoint, error)
	// RunSampleModel starts the sample model and returns its job.
	RunSampleModel(ctx context.Context, request SampleModelRequest) (*Job, error)
	// JobResult follows the link of job and returns the job result.
	JobResult(ctx context.Context, job *Job) (any, error)
}

// ServiceImpl implements Service.
type ServiceImpl struct {
	// client is the LCMAP REST client.
	client lcmap.Client
	// lctx supplies credentials and pooled connections to every request.
	lctx *lcmap.Context
}

// NewService creates the API service. lctx may be nil.
func NewService(client lcmap.Client, lctx *lcmap.Context) Service {
	return &ServiceImpl{
		client: client,
		lctx:   lctx,
	}
}

// Status returns the system status.
func (s *ServiceImpl) Status(ctx context.Context) (map[string]any, error) {
	result, err := s.get(ctx, statusPath, nil)
	if err != nil {
		return nil, err
	}

	status, ok := result.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: status is %T", ErrUnexpectedResponseFormat, result)
	}

	return status, nil
}

// Tiles returns the tiles matching query.
func (s *ServiceImpl) Tiles(ctx context.Context, query TileQuery) ([]Tile, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result, err := s.get(ctx, tilesPath, query.params())
	if err != nil {
		return nil, err
	}

	tiles, err := lcmap.DecodeResult[[]Tile](result)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponseFormat, err)
	}

	logger.Debugf(ctx, "Fetched %d tiles of %s", len(*tiles), query.Band)

	return *tiles, nil
}

// Rod returns the time series of the point in query.
func (s *ServiceImpl) Rod(ctx context.Context, query TileQuery) ([]RodPoint, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result, err := s.get(ctx, rodPath, query.params())
	if err != nil {
		return nil, err
	}

	rod, err := lcmap.DecodeResult[[]RodPoint](result)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponseFormat, err)
	}

	return *rod, nil
}

// RunSampleModel posts the model parameters and returns the job link.
func (s *ServiceImpl) RunSampleModel(ctx context.Context, request SampleModelRequest) (*Job, error) {
	response, err := s.client.Post(ctx, sampleModelPath, lcmap.Args{
		Options: lcmap.RequestOptions{Return: lcmap.Ptr(lcmap.ReturnBody)},
		Request: lcmap.Values{
			lcmap.KeyFormParams: lcmap.Values{
				"seconds": request.Seconds,
				"year":    request.Year,
			},
		},
		Client: s.lctx,
	})
	if err != nil {
		return nil, err
	}

	if err = checkResponse(response); err != nil {
		return nil, err
	}

	link, ok := lcmap.LinkHref(response)
	if !ok {
		return nil, ErrNoJobLink
	}

	logger.Infof(ctx, "Sample model started, result will be at %s", link)

	return &Job{
		Link:     link,
		Response: response,
	}, nil
}

// JobResult follows the job link and returns the result of the job.
func (s *ServiceImpl) JobResult(ctx context.Context, job *Job) (any, error) {
	if job == nil {
		return nil, ErrNoJobLink
	}

	source := job.Response
	if source == nil {
		source = map[string]any{"result": map[string]any{"link": map[string]any{"href": job.Link}}}
	}

	response, err := s.client.FollowLink(ctx, s.lctx, source, lcmap.RequestOptions{
		Return: lcmap.Ptr(lcmap.ReturnBody),
	})
	if err != nil {
		return nil, err
	}

	return resultOf(response)
}

func (s *ServiceImpl) get(ctx context.Context, path string, params lcmap.Values) (any, error) {
	args := lcmap.Args{
		Options: lcmap.RequestOptions{Return: lcmap.Ptr(lcmap.ReturnBody)},
		Client:  s.lctx,
	}

	if params != nil {
		args.Request = lcmap.Values{lcmap.KeyQueryParams: params}
	}

	response, err := s.client.Get(ctx, path, args)
	if err != nil {
		return nil, err
	}

	return resultOf(response)
}

// resultOf returns the result of a decoded body after checking it for errors.
func resultOf(response any) (any, error) {
	if err := checkResponse(response); err != nil {
		return nil, err
	}

	body, ok := response.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body is %T", ErrUnexpectedResponseFormat, response)
	}

	return body["result"], nil
}

// checkResponse turns recovered envelopes and API error lists into errors.
func checkResponse(response any) error {
	if envelope, ok := response.(*lcmap.Envelope); ok {
		return fmt.Errorf("%w: %s", ErrResourceNotFound, strings.Join(envelope.Errors, "; "))
	}

	body, ok := response.(map[string]any)
	if !ok {
		return nil
	}

	messages, ok := body["errors"].([]any)
	if !ok || len(messages) == 0 {
		return nil
	}

	texts := utils.Map(messages, func(message any) string {
		return fmt.Sprint(message)
	})

	return fmt.Errorf("%w: %s", ErrAPIErrors, strings.Join(texts, "; "))
}
