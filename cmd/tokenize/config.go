package main

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"github.com/fwessels/parser"
	"github.com/fwessels/parser/internal/fileutil"
	"github.com/fwessels/parser/internal/logutil"
)

const defaultConfigFile = "tokenize.toml"

// classConfig is the content of a configuration file. A missing key leaves
// the class unset.
type classConfig struct {
	Splitters    *string `toml:"splitters"`
	Quoters      *string `toml:"quoters"`
	Specials     *string `toml:"specials"`
	DeleteSet    *string `toml:"delete"`
	CommentStart *string `toml:"comment_start"`
	CommentEnd   *string `toml:"comment_end"`

	Log logutil.LogConfig `toml:"log"`
}

func defaultConfig() *classConfig {
	return &classConfig{Log: logutil.LogConfig{Level: "warn", Format: "console"}}
}

// loadConfig decodes path. An empty path falls back to tokenize.toml in
// the working directory if there is one.
func loadConfig(path string) (*classConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		if !fileutil.FileExists(defaultConfigFile) {
			return cfg, nil
		}
		path = defaultConfigFile
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", fileutil.ShortPath(path))
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Newf("config %s: unknown key %q", fileutil.ShortPath(path), undecoded[0].String())
	}
	return cfg, nil
}

// applyFlags lets explicitly set command line flags override the file.
func (c *classConfig) applyFlags(fs *pflag.FlagSet) {
	for name, dst := range map[string]**string{
		"splitters":     &c.Splitters,
		"quoters":       &c.Quoters,
		"specials":      &c.Specials,
		"delete":        &c.DeleteSet,
		"comment-start": &c.CommentStart,
		"comment-end":   &c.CommentEnd,
	} {
		if !fs.Changed(name) {
			continue
		}
		v, _ := fs.GetString(name)
		*dst = &v
	}
	for name, dst := range map[string]*string{
		"log-level":  &c.Log.Level,
		"log-format": &c.Log.Format,
		"log-file":   &c.Log.Filename,
	} {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
}

func (c *classConfig) options() []parser.Option {
	var opts []parser.Option
	if c.Splitters != nil {
		opts = append(opts, parser.WithSplitters(*c.Splitters))
	}
	if c.Quoters != nil {
		opts = append(opts, parser.WithQuoters(*c.Quoters))
	}
	if c.Specials != nil {
		opts = append(opts, parser.WithSpecials(*c.Specials))
	}
	if c.DeleteSet != nil {
		opts = append(opts, parser.WithDeleteSet(*c.DeleteSet))
	}
	if c.CommentStart != nil {
		opts = append(opts, parser.WithCommentStart(*c.CommentStart))
	}
	if c.CommentEnd != nil {
		opts = append(opts, parser.WithCommentEnd(*c.CommentEnd))
	}
	return opts
}
