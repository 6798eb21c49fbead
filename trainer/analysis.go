package trainer

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// RunRecord is one row of the training run log.
type RunRecord struct {
	Name               string
	Dataset            string
	Shape              []int
	Activation         string
	Regularization     string
	LearningRate       float64
	RegularizationRate float64
	BatchSize          int
	Steps              int
	EndTime            int64
	TrainLoss          float64
	TestLoss           float64
}

const csvRecords = 12

var runLogHeaders = []string{
	"Name", "Dataset", "Shape", "Activation", "Regularization", "LR", "RegRate", "BatchSize", "Steps", "End Time", "TrainLoss", "TestLoss",
}

// AppendRunLog appends the record to the csv run log at path, creating
// the file and writing headers first when it does not exist yet.
func AppendRunLog(path string, rec RunRecord) error {
	var needsHeaders bool
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("creating run log directory: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeaders = true
	}
	file, err := os.OpenFile(path,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if needsHeaders {
		if err := w.Write(runLogHeaders); err != nil {
			return fmt.Errorf("writing csv headers: %w", err)
		}
		w.Flush()
	}

	record := make([]string, csvRecords)
	record[0] = rec.Name
	record[1] = rec.Dataset
	record[2] = shapeString(rec.Shape)
	record[3] = rec.Activation
	record[4] = rec.Regularization
	record[5] = strconv.FormatFloat(rec.LearningRate, 'f', 4, 32)
	record[6] = strconv.FormatFloat(rec.RegularizationRate, 'f', 4, 32)
	record[7] = strconv.Itoa(rec.BatchSize)
	record[8] = strconv.Itoa(rec.Steps)
	record[9] = strconv.FormatInt(rec.EndTime, 10)
	record[10] = strconv.FormatFloat(rec.TrainLoss, 'f', 5, 32)
	record[11] = strconv.FormatFloat(rec.TestLoss, 'f', 5, 32)

	if err := w.Write(record); err != nil {
		return fmt.Errorf("error writing csv: %s", err.Error())
	}
	w.Flush()

	return w.Error()
}

// BestRun takes a run name and returns the logged run with the lowest
// test loss under that name.
func BestRun(path, name string) (RunRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return RunRecord{}, fmt.Errorf("opening run log file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	best := RunRecord{TestLoss: math.Inf(1)}
	found := false
	i := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return RunRecord{}, fmt.Errorf("reading record: %w", err)
		}
		if len(record) != csvRecords {
			if i == 0 {
				return RunRecord{}, fmt.Errorf("there are %d run log headers, expected %d", len(record), csvRecords)
			}
			return RunRecord{}, fmt.Errorf("there are %d run log values in record %d, expected %d", len(record), i, csvRecords)
		}
		i++
		if record[0] != name {
			continue
		}
		rec, err := parseRecord(record)
		if err != nil {
			return RunRecord{}, fmt.Errorf("parsing record %d: %w", i, err)
		}
		if rec.TestLoss < best.TestLoss {
			best = rec
			found = true
		}
	}

	if !found {
		return RunRecord{}, fmt.Errorf("no runs logged for %s", name)
	}
	return best, nil
}

func parseRecord(record []string) (RunRecord, error) {
	rec := RunRecord{
		Name:           record[0],
		Dataset:        record[1],
		Activation:     record[3],
		Regularization: record[4],
	}

	shape, err := parseShapeString(record[2])
	if err != nil {
		return RunRecord{}, fmt.Errorf("parsing shape %q: %w", record[2], err)
	}
	rec.Shape = shape

	rec.LearningRate, _ = strconv.ParseFloat(record[5], 64)
	rec.RegularizationRate, _ = strconv.ParseFloat(record[6], 64)
	rec.BatchSize, _ = strconv.Atoi(record[7])
	rec.Steps, _ = strconv.Atoi(record[8])
	rec.EndTime, _ = strconv.ParseInt(record[9], 10, 64)
	rec.TrainLoss, _ = strconv.ParseFloat(record[10], 64)

	// an unparsable test loss would parse as 0 and wrongly win as lowest
	rec.TestLoss, err = strconv.ParseFloat(record[11], 64)
	if err != nil {
		return RunRecord{}, fmt.Errorf("parsing test loss %q: %w", record[11], err)
	}

	return rec, nil
}

func shapeString(shape []int) string {
	parts := make([]string, len(shape))
	for i, n := range shape {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "-")
}

func parseShapeString(s string) ([]int, error) {
	parts := strings.Split(s, "-")
	shape := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		shape[i] = n
	}
	return shape, nil
}
