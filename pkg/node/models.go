package node

import (
	"math"
	"strconv"

	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrInvalidJob is returned when a job cannot be decoded or asks for more
// work than a node accepts.
var ErrInvalidJob = errors.New("invalid job")

// Largest sample count and iteration cap a job may ask for.
const (
	MaxJobSamples    = 10_000_000
	MaxJobIterations = 1_000_000
)

type Node struct {
	Id       string          // Node identifier, used as queue consumer tag
	Defaults pagerank.Config // Estimator configuration for fields a job leaves unset
	Seed     int64           // Random walk seed for jobs without one (0: time based)
	Queue    Queue           // Queue information (worker only)
}

type Queue struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Work    *amqp.Queue
	Result  *amqp.Queue
}

// Job asks for the ranks of a corpus.
type Job struct {
	Id     string              `json:"id,omitempty"`
	Corpus map[string][]string `json:"corpus"`
	Config pagerank.Config     `json:"config"`
	Seed   int64               `json:"seed,omitempty"`
}

// Result holds the ranks computed by both estimators for a job.
type Result struct {
	Id         string         `json:"id"`
	Sampling   pagerank.Ranks `json:"sampling,omitempty"`
	Iteration  pagerank.Ranks `json:"iteration,omitempty"`
	Iterations int            `json:"iterations,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (j Job) toStruct() (*structpb.Struct, error) {
	corpus := make(map[string]any, len(j.Corpus))
	for page, links := range j.Corpus {
		list := make([]any, len(links))
		for i, link := range links {
			list[i] = link
		}
		corpus[page] = list
	}
	return structpb.NewStruct(map[string]any{
		"id":             j.Id,
		"corpus":         corpus,
		"damping":        j.Config.Damping,
		"samples":        j.Config.Samples,
		"threshold":      j.Config.Threshold,
		"max_iterations": j.Config.MaxIterations,
		// Seeds do not fit a float64 number
		"seed": strconv.FormatInt(j.Seed, 10),
	})
}

func jobFromStruct(s *structpb.Struct) (Job, error) {
	fields := s.GetFields()
	job := Job{Id: fields["id"].GetStringValue()}
	corpus := fields["corpus"].GetStructValue()
	if corpus == nil {
		return job, errors.Wrap(ErrInvalidJob, "missing corpus")
	}
	job.Corpus = make(map[string][]string, len(corpus.GetFields()))
	for page, value := range corpus.GetFields() {
		links := []string{}
		switch value.GetKind().(type) {
		case *structpb.Value_ListValue, *structpb.Value_NullValue:
		default:
			return job, errors.Wrapf(ErrInvalidJob, "links of page %q are not a list", page)
		}
		for _, link := range value.GetListValue().GetValues() {
			target, ok := link.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return job, errors.Wrapf(ErrInvalidJob, "link of page %q is not a string", page)
			}
			links = append(links, target.StringValue)
		}
		job.Corpus[page] = links
	}
	samples, err := intField(fields, "samples", MaxJobSamples)
	if err != nil {
		return job, err
	}
	maxIterations, err := intField(fields, "max_iterations", MaxJobIterations)
	if err != nil {
		return job, err
	}
	job.Config = pagerank.Config{
		Damping:       fields["damping"].GetNumberValue(),
		Samples:       samples,
		Threshold:     fields["threshold"].GetNumberValue(),
		MaxIterations: maxIterations,
	}
	if seed := fields["seed"].GetStringValue(); seed != "" {
		var err error
		if job.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return job, errors.Wrapf(ErrInvalidJob, "seed %q", seed)
		}
	}
	return job, nil
}

// intField reads a whole number in [0, limit]; a missing field is 0.
func intField(fields map[string]*structpb.Value, name string, limit int) (int, error) {
	v := fields[name].GetNumberValue()
	if v < 0 || v > float64(limit) || v != math.Trunc(v) {
		return 0, errors.Wrapf(ErrInvalidJob, "%s must be a whole number in [0, %d], got %v", name, limit, v)
	}
	return int(v), nil
}

func (r Result) toStruct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":         r.Id,
		"sampling":   ranksToMap(r.Sampling),
		"iteration":  ranksToMap(r.Iteration),
		"iterations": r.Iterations,
		"error":      r.Error,
	})
}

func resultFromStruct(s *structpb.Struct) Result {
	fields := s.GetFields()
	return Result{
		Id:         fields["id"].GetStringValue(),
		Sampling:   ranksFromStruct(fields["sampling"].GetStructValue()),
		Iteration:  ranksFromStruct(fields["iteration"].GetStructValue()),
		Iterations: int(fields["iterations"].GetNumberValue()),
		Error:      fields["error"].GetStringValue(),
	}
}

func ranksToMap(ranks pagerank.Ranks) map[string]any {
	m := make(map[string]any, len(ranks))
	for page, rank := range ranks {
		m[page] = rank
	}
	return m
}

func ranksFromStruct(s *structpb.Struct) pagerank.Ranks {
	if len(s.GetFields()) == 0 {
		return nil
	}
	ranks := make(pagerank.Ranks, len(s.GetFields()))
	for page, value := range s.GetFields() {
		ranks[page] = value.GetNumberValue()
	}
	return ranks
}
