package player

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"
	"time"

	"soundbyte/internal/clips"
	"soundbyte/internal/stream"
)

type State string

const (
	StateConnecting State = "Connecting"
	StateStreaming  State = "Streaming"
	StateCompleted  State = "Completed"
	StateFailed     State = "Failed"
)

var (
	ErrNoVoiceChannel  = errors.New("you need to be in a voice channel")
	ErrConnect         = errors.New("failed to join the voice channel")
	ErrFileMissing     = errors.New("clip file is missing on disk")
	ErrNoActiveSession = errors.New("no clip is currently playing")
)

// Conn is the slice of a voice connection playback needs.
type Conn interface {
	Speaking(bool) error
	Send() chan<- []byte
	Disconnect() error
}

// Dialer joins a guild voice channel and blocks until the connection is ready.
type Dialer func(guildID, channelID string) (Conn, error)

// Opener opens a clip file as 48kHz stereo s16le PCM.
type Opener func(path string) (io.ReadCloser, func(), error)

// SendFunc pushes a PCM stream down a voice send channel until end of
// stream, error, or stop.
type SendFunc func(pcm io.Reader, stop <-chan struct{}, send chan<- []byte) error

type Config struct {
	Dial        Dialer
	Open        Opener   // defaults to stream.OpenFFmpeg
	Send        SendFunc // defaults to stream.Send
	Registry    *clips.Registry
	Dir         string
	JoinTimeout time.Duration // defaults to 30s
}

// Player resolves tokens to clips and drives playback sessions end-to-end,
// one active session per guild.
type Player struct {
	mu       sync.Mutex
	cfg      Config
	sessions map[string]*Session
}

func New(cfg Config) *Player {
	if cfg.Open == nil {
		cfg.Open = stream.OpenFFmpeg
	}
	if cfg.Send == nil {
		cfg.Send = stream.Send
	}
	if cfg.JoinTimeout <= 0 {
		cfg.JoinTimeout = 30 * time.Second
	}
	return &Player{cfg: cfg, sessions: make(map[string]*Session)}
}

// Session is one playback of a clip in a guild voice channel.
type Session struct {
	mu       sync.Mutex
	clip     clips.Clip
	state    State
	conn     Conn
	stop     chan struct{}
	stopOnce sync.Once
	relOnce  sync.Once
}

func (s *Session) Clip() clips.Clip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clip
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Session) signalStop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// releaseConn disconnects at most once; repeated calls are no-ops.
func (s *Session) releaseConn() {
	s.relOnce.Do(func() {
		if s.conn == nil {
			return
		}
		if err := s.conn.Speaking(false); err != nil {
			log.Printf("[WARN] Failed to clear speaking state: %v", err)
		}
		if err := s.conn.Disconnect(); err != nil {
			log.Printf("[WARN] Failed to disconnect voice: %v", err)
		}
	})
}

// Play resolves token against the registry and starts a new session in the
// requester's voice channel. It returns once streaming has begun; completion
// and teardown happen in the background. An already running session in the
// same guild keeps streaming and is only superseded as the naming target.
func (p *Player) Play(guildID, channelID, token string) (clips.Clip, error) {
	clip, err := p.cfg.Registry.Find(token)
	if err != nil {
		return clips.Clip{}, err
	}
	if channelID == "" {
		return clips.Clip{}, ErrNoVoiceChannel
	}

	sess := &Session{clip: clip, state: StateConnecting, stop: make(chan struct{})}

	conn, err := p.dialWithTimeout(guildID, channelID)
	if err != nil {
		sess.setState(StateFailed)
		return clips.Clip{}, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	sess.conn = conn

	path := filepath.Join(p.cfg.Dir, clip.FileName)
	pcm, cleanup, err := p.cfg.Open(path)
	if err != nil {
		sess.setState(StateFailed)
		sess.releaseConn()
		log.Printf("[WARN] Clip %s is registered but unreadable: %v", clip.FileName, err)
		return clips.Clip{}, fmt.Errorf("%w: %s", ErrFileMissing, clip.FileName)
	}

	sess.setState(StateStreaming)

	p.mu.Lock()
	p.sessions[guildID] = sess
	p.mu.Unlock()

	go p.run(guildID, sess, pcm, cleanup)

	log.Printf("[INFO] Now playing %q in guild %s", clip.Label(), guildID)
	return clip, nil
}

// run drives one session from Streaming to a terminal state.
func (p *Player) run(guildID string, sess *Session, pcm io.ReadCloser, cleanup func()) {
	defer func() {
		if cleanup != nil {
			cleanup()
		}
	}()
	defer pcm.Close()

	if err := sess.conn.Speaking(true); err != nil {
		log.Printf("[WARN] Failed to set speaking state: %v", err)
	}

	err := p.cfg.Send(pcm, sess.stop, sess.conn.Send())
	if err != nil {
		sess.setState(StateFailed)
		log.Printf("[ERR] Playback of %q failed: %v", sess.Clip().Label(), err)
	} else {
		sess.setState(StateCompleted)
	}
	sess.releaseConn()

	p.mu.Lock()
	if p.sessions[guildID] == sess {
		delete(p.sessions, guildID)
	}
	p.mu.Unlock()
}

func (p *Player) dialWithTimeout(guildID, channelID string) (Conn, error) {
	type result struct {
		conn Conn
		err  error
	}
	res := make(chan result, 1)
	go func() {
		conn, err := p.cfg.Dial(guildID, channelID)
		res <- result{conn, err}
	}()

	select {
	case r := <-res:
		return r.conn, r.err
	case <-time.After(p.cfg.JoinTimeout):
		go func() {
			// A join completing after the deadline still holds a
			// connection; drop it.
			if r := <-res; r.conn != nil {
				r.conn.Disconnect()
			}
		}()
		return nil, errors.New("timed out waiting for voice connection")
	}
}

// Active returns the clip of the guild's current session, if any.
func (p *Player) Active(guildID string) (clips.Clip, bool) {
	p.mu.Lock()
	sess := p.sessions[guildID]
	p.mu.Unlock()

	if sess == nil {
		return clips.Clip{}, false
	}
	return sess.Clip(), true
}

// NameActive assigns a display name to the clip currently playing in the
// guild. The clip's old name stays resolvable.
func (p *Player) NameActive(guildID, newName string) (clips.Clip, error) {
	p.mu.Lock()
	sess := p.sessions[guildID]
	p.mu.Unlock()

	if sess == nil {
		return clips.Clip{}, ErrNoActiveSession
	}

	clip := sess.Clip()
	if err := p.cfg.Registry.Rename(clip.FileName, newName); err != nil {
		return clips.Clip{}, err
	}

	sess.mu.Lock()
	sess.clip.DisplayName = newName
	clip = sess.clip
	sess.mu.Unlock()

	return clip, nil
}

// StopAll signals every in-flight session to stop. Used on shutdown so
// decoder processes and voice connections wind down.
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for guildID, sess := range p.sessions {
		sess.signalStop()
		delete(p.sessions, guildID)
	}
}
