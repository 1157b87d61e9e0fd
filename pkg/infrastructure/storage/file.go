package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"burger/pkg/domain/model"
)

const (
	RecordFileName = "burger.txt"
	CountFileName  = "burger_count.txt"

	dirPerm  os.FileMode = 0o700
	filePerm os.FileMode = 0o600
)

var _ model.OrderRepository = &FileOrderRepository{}

// FileOrderRepository keeps the latest order record and the running order
// count as two owner-only text files in one directory. It does no locking:
// concurrent runs race on both files.
type FileOrderRepository struct {
	dir        string
	recordPath string
	countPath  string
	logger     log.FieldLogger
}

func NewFileOrderRepository(dir string, logger log.FieldLogger) (*FileOrderRepository, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data directory is required")
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &FileOrderRepository{
		dir:        dir,
		recordPath: filepath.Join(dir, RecordFileName),
		countPath:  filepath.Join(dir, CountFileName),
		logger:     logger,
	}, nil
}

func (r *FileOrderRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *FileOrderRepository) Location() string {
	return r.recordPath
}

func (r *FileOrderRepository) LoadCount() int {
	logger := r.logger.WithField("path", r.countPath)
	if err := r.ensureDir(); err != nil {
		logger.WithError(err).Warn("Failed to create data directory")
		return 0
	}

	data, err := os.ReadFile(r.countPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).Warn("Failed to read order count")
		}
		return 0
	}

	count, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		logger.WithError(err).Warn("Order count is not an integer, starting from zero")
		return 0
	}
	return count
}

// Save overwrites both files and then restricts them to the owner. A failure
// leaves whatever was already written in place.
func (r *FileOrderRepository) Save(order *model.Order, count int) error {
	if err := r.ensureDir(); err != nil {
		return &model.PersistenceError{Op: "create data directory", Err: err}
	}
	if err := os.WriteFile(r.recordPath, []byte(FormatRecord(order)), filePerm); err != nil {
		return &model.PersistenceError{Op: "write order record", Err: err}
	}
	if err := os.WriteFile(r.countPath, []byte(strconv.Itoa(count)), filePerm); err != nil {
		return &model.PersistenceError{Op: "write order count", Err: err}
	}
	// WriteFile only applies the mode to files it creates.
	for _, path := range []string{r.recordPath, r.countPath} {
		if err := os.Chmod(path, filePerm); err != nil {
			return &model.PersistenceError{Op: "restrict permissions", Err: err}
		}
	}

	r.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"count":    count,
		"path":     r.recordPath,
	}).Info("Order saved")
	return nil
}

// LastRecord returns the stored order record, or an empty string when no
// order was saved yet.
func (r *FileOrderRepository) LastRecord() (string, error) {
	data, err := os.ReadFile(r.recordPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", &model.PersistenceError{Op: "read order record", Err: err}
	}
	return string(data), nil
}

func (r *FileOrderRepository) ensureDir() error {
	return os.MkdirAll(r.dir, dirPerm)
}

func FormatRecord(order *model.Order) string {
	return fmt.Sprintf("Burger: %s\nPrice: %s €\nTimestamp: %s\n",
		order.Description, order.Price.Pad(2), order.Timestamp())
}
