package step

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ajsb85/brepkernel/kernel"
)

// Writer handles STEP file generation. Grounded on ajsb85-sdfx's
// step/writer.go (original_source), adapted from a channel of
// sdf.Triangle3 slices to a kernel.TriMesh built up-front.
type Writer struct {
	file       *os.File
	writer     *bufio.Writer
	converter  *MeshConverter
	fileName   string
	authorName string
	orgName    string
}

// NewWriter creates a new STEP writer at path.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create STEP writer: %w", err)
	}

	return &Writer{
		file:       file,
		writer:     bufio.NewWriter(file),
		converter:  NewMeshConverter(),
		fileName:   filepath.Base(path),
		authorName: "brepkernel User",
		orgName:    "brepkernel Organization",
	}, nil
}

// SetAuthor sets the author and organization recorded in the file header.
func (w *Writer) SetAuthor(name, org string) {
	w.authorName = name
	w.orgName = org
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func (w *Writer) writeHeader() error {
	header := []string{
		"ISO-10303-21;",
		"HEADER;",
		"FILE_DESCRIPTION(('STEP AP214'),'1');",
		fmt.Sprintf("FILE_NAME('%s','%s',('%s'),('%s'),'brepkernel STEP Writer','brepkernel','');",
			w.fileName,
			time.Now().Format("2006-01-02T15:04:05"),
			w.authorName,
			w.orgName),
		"FILE_SCHEMA(('AUTOMOTIVE_DESIGN'));",
		"ENDSEC;",
	}

	for _, line := range header {
		if _, err := w.writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeData(entities []Entity) error {
	if _, err := w.writer.WriteString("DATA;\n"); err != nil {
		return err
	}

	for _, entity := range entities {
		str := entity.String()
		for _, line := range strings.Split(str, "\n") {
			if _, err := w.writer.WriteString(line + "\n"); err != nil {
				return err
			}
		}
	}

	if _, err := w.writer.WriteString("ENDSEC;\n"); err != nil {
		return err
	}
	return nil
}

func (w *Writer) writeFooter() error {
	_, err := w.writer.WriteString("END-ISO-10303-21;\n")
	return err
}

// WriteMesh writes mesh's triangles to the STEP file as one named
// manifold solid BREP.
func (w *Writer) WriteMesh(mesh []kernel.Triangle, name string) error {
	fmt.Printf("rendering %s (%d triangles)\n", w.fileName, len(mesh))

	optimized := OptimizeMesh(mesh)
	entities := w.converter.ConvertMesh(optimized, name)

	if err := w.writeHeader(); err != nil {
		return err
	}
	if err := w.writeData(entities); err != nil {
		return err
	}
	if err := w.writeFooter(); err != nil {
		return err
	}

	fmt.Printf("STEP export completed: %s\n", w.fileName)
	return w.writer.Flush()
}

// StreamWriter collects triangles delivered over a channel, then writes
// them to the STEP file once the channel is closed. Grounded on the
// ajsb85-sdfx's StreamWriter, useful when a caller tessellates face-by-face
// rather than building the whole TriMesh up-front.
type StreamWriter struct {
	writer    *Writer
	triangles []kernel.Triangle
	wg        *sync.WaitGroup
	input     chan []kernel.Triangle
	mutex     sync.Mutex
}

// NewStreamWriter creates a streaming STEP writer at path, returning the
// channel triangle batches should be sent to.
func NewStreamWriter(path string) (*StreamWriter, chan<- []kernel.Triangle, error) {
	writer, err := NewWriter(path)
	if err != nil {
		return nil, nil, err
	}

	input := make(chan []kernel.Triangle, 100)
	sw := &StreamWriter{
		writer: writer,
		wg:     new(sync.WaitGroup),
		input:  input,
	}

	sw.wg.Add(1)
	go sw.collect()

	return sw, input, nil
}

func (sw *StreamWriter) collect() {
	defer sw.wg.Done()
	for tris := range sw.input {
		sw.mutex.Lock()
		sw.triangles = append(sw.triangles, tris...)
		sw.mutex.Unlock()
	}
}

// SetAuthor sets the author and organization recorded in the file header.
func (sw *StreamWriter) SetAuthor(name, org string) {
	sw.writer.SetAuthor(name, org)
}

// Finalize closes the input channel, waits for collection to finish, and
// writes the accumulated triangles to the STEP file.
func (sw *StreamWriter) Finalize(name string) error {
	close(sw.input)
	sw.wg.Wait()

	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	if err := sw.writer.WriteMesh(sw.triangles, name); err != nil {
		sw.writer.Close()
		return err
	}
	return sw.writer.Close()
}

// WriteFile writes mesh to path as a STEP AP214 file containing one named
// manifold solid BREP.
func WriteFile(path, name string, mesh kernel.TriMesh) error {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	if err := w.WriteMesh(mesh.Triangles, name); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
