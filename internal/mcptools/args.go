package mcptools

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/job-matcher/internal/corpus"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/search"
	"github.com/jonathan/job-matcher/internal/types"
	rootschemas "github.com/jonathan/job-matcher/schemas"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"
)

type parseArgs struct {
	Query string `mapstructure:"query"`
}

type searchArgs struct {
	Query      string   `mapstructure:"query"`
	Page       int      `mapstructure:"page"`
	Limit      int      `mapstructure:"limit"`
	Location   string   `mapstructure:"location"`
	JobType    string   `mapstructure:"job_type"`
	Experience string   `mapstructure:"experience"`
	Industry   string   `mapstructure:"industry"`
	Skills     []string `mapstructure:"skills"`
	SalaryMin  *int     `mapstructure:"salary_min"`
	SalaryMax  *int     `mapstructure:"salary_max"`
	Remote     bool     `mapstructure:"remote"`
}

func (a searchArgs) params() search.Params {
	p := search.Params{
		Search:     a.Query,
		Page:       a.Page,
		Limit:      a.Limit,
		Location:   a.Location,
		JobType:    a.JobType,
		Experience: a.Experience,
		Industry:   a.Industry,
		Skills:     a.Skills,
		Remote:     a.Remote,
	}
	if a.SalaryMin != nil {
		p.SalaryMin = corpus.IntPtr(*a.SalaryMin)
	}
	if a.SalaryMax != nil {
		p.SalaryMax = corpus.IntPtr(*a.SalaryMax)
	}
	return p
}

type recommendArgs struct {
	Profile        map[string]interface{} `mapstructure:"profile"`
	Limit          int                    `mapstructure:"limit"`
	IncludeApplied bool                   `mapstructure:"include_applied"`
}

type trendingArgs struct {
	Limit         int    `mapstructure:"limit"`
	TimeframeDays int    `mapstructure:"timeframe_days"`
	Algorithm     string `mapstructure:"algorithm"`
}

// decodeArgs decodes tool arguments into out. JSON numbers arrive as float64,
// so input is weakly typed.
func decodeArgs(request mcp.CallToolRequest, out interface{}) error {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		if request.Params.Arguments != nil {
			return fmt.Errorf("invalid arguments format")
		}
		args = map[string]interface{}{}
	}
	return decode(args, out)
}

func decode(in interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			stringToUUIDHook,
		),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

var uuidType = reflect.TypeOf(uuid.UUID{})

func stringToUUIDHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != uuidType {
		return data, nil
	}
	return uuid.Parse(data.(string))
}

// decodeProfile validates a loosely typed profile against the user profile
// schema, then decodes and validates it.
func decodeProfile(raw map[string]interface{}) (*types.UserProfile, error) {
	if raw == nil {
		return nil, fmt.Errorf("profile is required")
	}
	if err := schemas.ValidateValue(rootschemas.UserProfile, raw); err != nil {
		return nil, err
	}

	var profile types.UserProfile
	if err := decode(raw, &profile); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &profile, nil
}
