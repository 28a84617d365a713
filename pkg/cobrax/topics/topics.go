// Package topics provides topic-based help for Cobra CLI applications.
// Topics are loaded from files in an fs.FS, so they can come from a
// directory on disk or from files embedded in the binary.
package topics

import (
	stderrors "errors"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// TopicManager holds the help topics found under one directory
type TopicManager struct {
	fsys       fs.FS
	dir        string
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics.
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content.
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// New creates a new TopicManager with default extensions
func New(fsys fs.FS, dir string) *TopicManager {
	return NewWithOptions(fsys, dir, Options{})
}

// NewWithOptions creates a new TopicManager with custom options
func NewWithOptions(fsys fs.FS, dir string, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		dir:        dir,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}

	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	return tm
}

// Scan walks the topics directory. A missing directory yields no topics.
func (tm *TopicManager) Scan() error {
	err := fs.WalkDir(tm.fsys, tm.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// GetTopic retrieves a topic by name. The file extension is optional.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	if tm.supported(path.Ext(name)) {
		topic, ok := tm.topics[strings.TrimSuffix(name, path.Ext(name))]
		return topic, ok
	}
	return nil, false
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats the topic body with the configured renderer
func (tm *TopicManager) Render(t *Topic) string {
	return tm.renderer.Render(t.Body(), path.Ext(t.Path))
}

// Body returns the content without a leading "---" frontmatter block.
func (t *Topic) Body() string {
	content := strings.ReplaceAll(t.Content, "\r\n", "\n")
	if !strings.HasPrefix(content, "---\n") {
		return content
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return content
	}
	rest = rest[end+len("\n---"):]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	} else {
		rest = ""
	}
	return strings.TrimLeft(rest, "\n")
}
