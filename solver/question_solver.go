package solver

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/SaiNageswarS/doubt-solver-api/appconfig"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Solver turns a question and doubt into a solution text. It never fails:
// outbound problems are described inside the returned text.
type Solver interface {
	Solve(ctx context.Context, question, doubt string) string
}

type QuestionSolver struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
	topP        float64
}

func NewQuestionSolver(cfg *appconfig.AppConfig, opts ...option.RequestOption) *QuestionSolver {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.GroqAPIKey),
		option.WithBaseURL(cfg.GroqBaseURL),
		option.WithMaxRetries(0),
		option.WithMiddleware(requireJSON),
	}
	clientOpts = append(clientOpts, opts...)

	return &QuestionSolver{
		client:      openai.NewClient(clientOpts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		topP:        cfg.TopP,
	}
}

// ProvideQuestionSolver is the constructor registered with the boot container.
func ProvideQuestionSolver(cfg *appconfig.AppConfig) *QuestionSolver {
	return NewQuestionSolver(cfg)
}

func (s *QuestionSolver) Solve(ctx context.Context, question, doubt string) string {
	solution, err := async.Await(s.complete(ctx, BuildPrompt(question, doubt)))
	if err != nil {
		logger.Error("Failed to solve question", zap.Error(err))
		return Describe(err)
	}

	return solution
}

func (s *QuestionSolver) complete(ctx context.Context, prompt string) <-chan async.Result[string] {
	return async.Go(func() (content string, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = status.Errorf(codes.Unknown, "%v", r)
			}
		}()

		resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model: s.model,
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Temperature: openai.Float(s.temperature),
			MaxTokens:   openai.Int(s.maxTokens),
			TopP:        openai.Float(s.topP),
		})
		if err != nil {
			return "", classify(err)
		}

		if len(resp.Choices) == 0 {
			return "", status.Error(codes.DataLoss, "completion response has no choices")
		}

		// An omitted or null message reads as empty content; treat it as malformed.
		choice := resp.Choices[0]
		if !choice.JSON.Message.Valid() || !choice.Message.JSON.Content.Valid() {
			return "", status.Error(codes.DataLoss, "completion response has no message content")
		}

		return choice.Message.Content, nil
	})
}

// classify maps a client error onto a status code:
// Unavailable for transport or API status failures, DataLoss for
// undecodable bodies, Unknown for everything else.
func classify(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	var apiErr *openai.Error
	var urlErr *url.Error
	var netErr net.Error
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &apiErr), errors.As(err, &urlErr), errors.As(err, &netErr):
		return status.Error(codes.Unavailable, err.Error())
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return status.Error(codes.DataLoss, err.Error())
	default:
		return status.Error(codes.Unknown, err.Error())
	}
}

// requireJSON rejects a successful response that does not declare a JSON body.
func requireJSON(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	res, err := next(req)
	if err != nil || res.StatusCode >= http.StatusBadRequest {
		return res, err
	}

	mediaType, _, _ := mime.ParseMediaType(res.Header.Get("Content-Type"))
	if strings.Contains(mediaType, "application/json") || strings.HasSuffix(mediaType, "+json") {
		return res, nil
	}

	res.Body.Close()
	return nil, status.Errorf(codes.DataLoss, "completion response is not JSON (content type %q)", mediaType)
}

// Describe renders a solver error as the text embedded in a solution.
func Describe(err error) string {
	st := status.Convert(err)

	switch st.Code() {
	case codes.Unavailable:
		return "API Error: " + st.Message()
	case codes.DataLoss:
		return "Response parsing error: " + st.Message()
	default:
		return "Unexpected error: " + st.Message()
	}
}
