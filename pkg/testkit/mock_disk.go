package testkit

import (
	"bytes"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/shashiranjanraj/feastbook/pkg/storage"
)

// MockDisk is a testify/mock-backed storage.Disk for failure injection.
//
//	disk := testkit.NewMockDisk()
//	disk.On("Put", "orders.dat", mock.Anything).Return(errors.New("disk full"))
type MockDisk struct {
	mock.Mock
}

var _ storage.Disk = (*MockDisk)(nil)

// NewMockDisk returns a MockDisk with no expectations. MakeDirectory is
// pre-configured to succeed.
func NewMockDisk() *MockDisk {
	d := &MockDisk{}
	d.On("MakeDirectory", mock.Anything).Return(nil).Maybe()
	return d
}

func (d *MockDisk) Put(path string, content []byte) error {
	return d.Called(path, content).Error(0)
}

func (d *MockDisk) Get(path string) ([]byte, error) {
	args := d.Called(path)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// GetStream serves the bytes configured for Get, so tests only mock Get.
func (d *MockDisk) GetStream(path string) (io.ReadCloser, error) {
	data, err := d.Get(path)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (d *MockDisk) Exists(path string) bool {
	return d.Called(path).Bool(0)
}

func (d *MockDisk) Delete(path string) error {
	return d.Called(path).Error(0)
}

func (d *MockDisk) MakeDirectory(path string) error {
	return d.Called(path).Error(0)
}
