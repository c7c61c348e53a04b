package boards

import (
	"fmt"
	"net/url"
	"os"

	"github.com/justsurfingit/job-tracker/internal/models"
	"gopkg.in/yaml.v3"
)

// Default is the built-in job-board directory.
func Default() []models.JobBoard {
	return []models.JobBoard{
		{Name: "LinkedIn", URL: "https://www.linkedin.com/jobs/"},
		{Name: "Indeed", URL: "https://www.indeed.com/"},
		{Name: "Glassdoor", URL: "https://www.glassdoor.com/Job/index.htm"},
		{Name: "Wellfound (formerly AngelList)", URL: "https://wellfound.com/"},
		{Name: "Built In", URL: "https://builtin.com/"},
	}
}

type file struct {
	Boards []models.JobBoard `yaml:"boards"`
}

// Load reads the directory from a YAML file. An empty path yields Default.
//
//	boards:
//	  - name: LinkedIn
//	    url: https://www.linkedin.com/jobs/
func Load(path string) ([]models.JobBoard, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job boards: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse job boards: %w", err)
	}
	if len(f.Boards) == 0 {
		return nil, fmt.Errorf("job boards file %s lists no boards", path)
	}
	for i, b := range f.Boards {
		if b.Name == "" {
			return nil, fmt.Errorf("job board %d: name is required", i)
		}
		if u, err := url.Parse(b.URL); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("job board %q: invalid url %q", b.Name, b.URL)
		}
	}
	return f.Boards, nil
}
