package util

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
)

//*******************************************
// binary buffer io
//*******************************************

func NewBufferReader(data []byte) BufferReader {
	reader := bytes.NewReader(data)
	return BufferReader{
		reader: reader,
	}
}

type BufferReader struct {
	reader *bytes.Reader
}

func Read[T any](reader BufferReader) T {
	var value T
	binary.Read(reader.reader, binary.LittleEndian, &value)
	return value
}

func ReadArray[T any](reader BufferReader) Array[T] {
	var size int32
	binary.Read(reader.reader, binary.LittleEndian, &size)
	value := NewArray[T](int(size))
	binary.Read(reader.reader, binary.LittleEndian, &value)
	return value
}

func NewBufferWriter() BufferWriter {
	buffer := bytes.Buffer{}
	return BufferWriter{
		buffer: &buffer,
	}
}

type BufferWriter struct {
	buffer *bytes.Buffer
}

func (self *BufferWriter) Bytes() []byte {
	return self.buffer.Bytes()
}

func Write[T any](writer BufferWriter, value T) {
	binary.Write(writer.buffer, binary.LittleEndian, value)
}

func WriteArray[T any](writer BufferWriter, value Array[T]) {
	binary.Write(writer.buffer, binary.LittleEndian, int32(value.Length()))
	binary.Write(writer.buffer, binary.LittleEndian, value)
}

//*******************************************
// file helpers
//*******************************************

func WriteBytesToFile(data []byte, file string) error {
	err := os.WriteFile(file, data, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to write "+file)
	}
	return nil
}

func ReadBytesFromFile(file string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read "+file)
	}
	return data, nil
}
