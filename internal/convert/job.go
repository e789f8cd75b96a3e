package convert

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"dvd2mp4/internal/vob"
)

// Job is one conversion unit: an ordered fragment list bound to a target
// output path. No job state survives the run.
type Job struct {
	ID       string
	TitleSet string
	Files    []vob.File
	Output   string
}

// planSingle binds every discovered fragment to one output file. An empty
// output falls back to the input directory's name with an .mp4 extension,
// resolved in the current working directory.
func planSingle(files []vob.File, inputDir, output string) (Job, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		output = filepath.Base(strings.TrimRight(inputDir, string(filepath.Separator))) + ".mp4"
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return Job{}, err
	}
	return Job{
		ID:     uuid.NewString(),
		Files:  files,
		Output: absOutput,
	}, nil
}

// planSplit produces one job per title-set group, each named after its
// prefix. Groups arrive sorted from vob.GroupByTitleSet.
func planSplit(files []vob.File) ([]Job, error) {
	groups := vob.GroupByTitleSet(files)
	jobs := make([]Job, 0, len(groups))
	for _, group := range groups {
		absOutput, err := filepath.Abs(group.TitleSet + ".mp4")
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, Job{
			ID:       uuid.NewString(),
			TitleSet: group.TitleSet,
			Files:    group.Files,
			Output:   absOutput,
		})
	}
	return jobs, nil
}
