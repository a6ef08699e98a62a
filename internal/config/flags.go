package config

import (
	"path/filepath"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

// Options are the command line settings of one run.
type Options struct {
	Song        string
	Difficulty  string
	SongsDir    string
	TuningFile  string
	Manifest    string
	Database    string
	FramePeriod time.Duration
	Delay       time.Duration
	LogLevel    string
	LogFile     string
	Headless    bool
	Mute        bool
}

// Parse reads the command line, args excludes the program name.
func Parse(args []string) (*Options, error) {
	app := kingpin.New("beatxr", "Rhythm game simulation core")
	app.Version("0.3.0")

	o := &Options{}
	app.Flag("song", "Song directory name").Default("Test Song").Short('s').StringVar(&o.Song)
	app.Flag("difficulty", "Chart difficulty").Default("Expert").Short('d').StringVar(&o.Difficulty)
	app.Flag("songs-dir", "Directory holding the songs").Default("./assets/songs").StringVar(&o.SongsDir)
	app.Flag("config", "Tuning file (toml)").Short('c').StringVar(&o.TuningFile)
	app.Flag("assets", "Asset manifest (yaml)").Default("./assets/manifest.yaml").StringVar(&o.Manifest)
	app.Flag("db", "Score database").Default("./scores.db").StringVar(&o.Database)
	app.Flag("frame-period", "Tick period").Default("11ms").Short('p').DurationVar(&o.FramePeriod)
	app.Flag("delay", "Start delay").Default("1.5s").DurationVar(&o.Delay)
	app.Flag("log-level", "Log level, overrides the tuning file").StringVar(&o.LogLevel)
	app.Flag("log-file", "Log file, - for stderr").Default("beatxr.log").StringVar(&o.LogFile)
	app.Flag("headless", "Run without the terminal renderer").BoolVar(&o.Headless)
	app.Flag("mute", "Run without audio output").BoolVar(&o.Mute)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	return o, nil
}

func (o *Options) SongDir() string {
	return filepath.Join(o.SongsDir, o.Song)
}
