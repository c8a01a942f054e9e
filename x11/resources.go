package x11

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

type binding byte

const (
	tight binding = '.'
	loose binding = '*'
)

type component struct {
	bind binding
	name string
}

type resource struct {
	components []component
	value      string
}

// Database is a resource database in the format of .Xresources files.
// Entries look like "prog.geometry: 200x100" or "*borderWidth: 4".
type Database struct {
	entries map[string]resource
}

func NewDatabase() *Database {
	return &Database{entries: map[string]resource{}}
}

// ParseResources reads resource lines from r. Lines starting with '!' are
// comments and lines starting with '#' are preprocessor directives, which
// are ignored. A trailing backslash continues the line.
func ParseResources(r io.Reader) (*Database, error) {
	db := NewDatabase()
	sc := bufio.NewScanner(r)
	lineno := 0
	var pending strings.Builder
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if strings.HasSuffix(line, "\\") && !strings.HasSuffix(line, "\\\\") {
			pending.WriteString(line[:len(line)-1])
			continue
		}
		pending.WriteString(line)
		full := pending.String()
		pending.Reset()
		if err := db.PutLine(full); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if pending.Len() > 0 {
		if err := db.PutLine(pending.String()); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return db, nil
}

// LoadResourceFile parses the file at path. A missing file yields an empty
// database.
func LoadResourceFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewDatabase(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	db, err := ParseResources(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// PutLine adds one "specifier: value" line, replacing any entry with the
// same specifier. Blank lines, comments and directives are accepted and
// ignored.
func (db *Database) PutLine(line string) error {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || trimmed[0] == '!' || trimmed[0] == '#' {
		return nil
	}
	colon := strings.IndexByte(trimmed, ':')
	if colon < 0 {
		return fmt.Errorf("missing ':' in resource %q", line)
	}
	spec := strings.TrimRight(trimmed[:colon], " \t")
	value := unescapeValue(strings.TrimLeft(trimmed[colon+1:], " \t"))
	return db.Put(spec, value)
}

// Put adds an entry for a specifier such as "prog*font".
func (db *Database) Put(spec, value string) error {
	comps, err := parseSpecifier(spec)
	if err != nil {
		return err
	}
	db.entries[specKey(comps)] = resource{components: comps, value: value}
	return nil
}

// Merge copies every entry of other into db, overriding entries with the
// same specifier.
func (db *Database) Merge(other *Database) {
	for k, v := range other.entries {
		db.entries[k] = v
	}
}

func (db *Database) Len() int {
	return len(db.entries)
}

// Get looks up a fully qualified resource name and class, such as
// "xsimple.geometry" and "XSimple.Geometry". When several entries match, the
// most specific one wins: at each level a name beats a class, which beats
// '?', which beats skipping the level with '*'; and a tight binding beats a
// loose one.
func (db *Database) Get(name, class string) (string, bool) {
	names := strings.Split(name, ".")
	classes := strings.Split(class, ".")
	if len(names) != len(classes) {
		return "", false
	}
	var (
		best      []int
		bestValue string
		found     bool
	)
	for _, res := range db.entries {
		score, ok := match(res.components, names, classes)
		if !ok {
			continue
		}
		if !found || better(score, best) {
			best, bestValue, found = score, res.value, true
		}
	}
	return bestValue, found
}

const (
	scoreSkipped = iota
	scoreWildcard
	scoreClass
	scoreName
)

// match reports whether comps matches the query and returns, per query
// level, a score where higher is more specific.
func match(comps []component, names, classes []string) ([]int, bool) {
	if len(comps) == 0 {
		return nil, len(names) == 0
	}
	if len(names) == 0 {
		return nil, false
	}
	c := comps[0]
	var (
		best  []int
		found bool
	)
	try := func(level int, rest []int, ok bool) {
		if !ok {
			return
		}
		score := append([]int{level}, rest...)
		if !found || better(score, best) {
			best, found = score, true
		}
	}

	level := -1
	switch c.name {
	case names[0]:
		level = scoreName
	case classes[0]:
		level = scoreClass
	case "?":
		level = scoreWildcard
	}
	if level >= 0 {
		rest, ok := match(comps[1:], names[1:], classes[1:])
		// Tight bindings rank above loose ones at the same level.
		if c.bind == tight {
			level = level*2 + 1
		} else {
			level = level * 2
		}
		try(level, rest, ok)
	}
	if c.bind == loose {
		rest, ok := match(comps, names[1:], classes[1:])
		try(scoreSkipped, rest, ok)
	}
	return best, found
}

func better(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

func parseSpecifier(spec string) ([]component, error) {
	if spec == "" {
		return nil, fmt.Errorf("empty resource specifier")
	}
	var comps []component
	bind := tight
	start := 0
	for i := 0; i <= len(spec); i++ {
		if i < len(spec) && spec[i] != '.' && spec[i] != '*' {
			continue
		}
		if i > start {
			comps = append(comps, component{bind: bind, name: spec[start:i]})
			bind = tight
		}
		if i < len(spec) && spec[i] == '*' {
			bind = loose
		}
		start = i + 1
	}
	if len(comps) == 0 {
		return nil, fmt.Errorf("resource specifier %q has no components", spec)
	}
	for _, c := range comps {
		if strings.ContainsAny(c.name, " \t") {
			return nil, fmt.Errorf("resource specifier %q contains whitespace", spec)
		}
	}
	return comps, nil
}

func specKey(comps []component) string {
	var sb strings.Builder
	for _, c := range comps {
		sb.WriteByte(byte(c.bind))
		sb.WriteString(c.name)
	}
	return sb.String()
}

func unescapeValue(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case ' ', '\t', '\\':
			sb.WriteByte(s[i])
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
