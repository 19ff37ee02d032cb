package serve

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LuisKeys/isolation-adversarial-search/ai"
	"github.com/LuisKeys/isolation-adversarial-search/cmd/internal/opt"
	"github.com/LuisKeys/isolation-adversarial-search/isolation"
	"github.com/LuisKeys/isolation-adversarial-search/notation"
	pb "github.com/LuisKeys/isolation-adversarial-search/pb/isolation/proto"
)

// DefaultMoveTime bounds a SelectMove call that names no move time
// when the engine has no depth limit.
const DefaultMoveTime = time.Second

// MinReplyMargin is the least time an Analyze call reserves before its
// deadline for sending the reply.
const MinReplyMargin = 20 * time.Millisecond

type Command struct {
	port int
	opt  opt.Minimax
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve engine RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55430, "bind port")
	c.opt.AddFlags(flags)
}

type server struct {
	base ai.Config
}

// NewServer returns the Isolation service. Each call builds its own
// engine from base, so calls may run concurrently.
func NewServer(base ai.Config) pb.IsolationServer {
	return &server{base: base}
}

func (s *server) config(strategy string) (ai.Config, error) {
	cfg := s.base
	if strategy != "" {
		st, err := ai.ParseStrategy(strategy)
		if err != nil {
			return cfg, status.Error(codes.InvalidArgument, err.Error())
		}
		cfg.Strategy = st
		cfg.Evaluate = nil
	}
	return cfg, nil
}

func parsePosition(ipn string) (*isolation.Position, error) {
	p, err := notation.ParseIPN(ipn)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return p, nil
}

func engineError(err error) error {
	switch {
	case errors.Is(err, ai.ErrGameOver):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// searchContext ends a tenth of the remaining time, and at least
// MinReplyMargin, before the deadline of ctx, so the answer reaches the
// caller in time.
func searchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	dl, ok := ctx.Deadline()
	if !ok {
		return context.WithCancel(ctx)
	}
	margin := time.Until(dl) / 10
	if margin < MinReplyMargin {
		margin = MinReplyMargin
	}
	return context.WithDeadline(ctx, dl.Add(-margin))
}

func (s *server) Analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeResponse, error) {
	p, err := parsePosition(req.Position)
	if err != nil {
		return nil, err
	}
	cfg, err := s.config(req.Strategy)
	if err != nil {
		return nil, err
	}
	if req.Depth > 0 {
		cfg.MaxDepth = int(req.Depth)
	}
	if _, ok := ctx.Deadline(); !ok && cfg.MaxDepth <= 0 {
		return nil, status.Error(codes.InvalidArgument, "analyze needs a depth or a deadline")
	}
	sctx, cancel := searchContext(ctx)
	defer cancel()

	r, err := ai.NewEngine(cfg).Analyze(sctx, ai.View(p))
	if err != nil {
		return nil, engineError(err)
	}
	log.Info().
		Str("position", req.Position).
		Int("depth", r.Stats.Depth).
		Str("move", notation.FormatMove(p.Geometry(), r.Move)).
		Msg("analyze")
	return &pb.AnalyzeResponse{
		Move:      notation.FormatMove(p.Geometry(), r.Move),
		Value:     int64(r.Value),
		Depth:     int32(r.Stats.Depth),
		Visited:   r.Stats.Visited,
		Evaluated: r.Stats.Evaluated,
	}, nil
}

func (s *server) SelectMove(req *pb.SelectMoveRequest, stream pb.Isolation_SelectMoveServer) error {
	p, err := parsePosition(req.Position)
	if err != nil {
		return err
	}
	cfg, err := s.config(req.Strategy)
	if err != nil {
		return err
	}

	ctx := stream.Context()
	movetime := time.Duration(req.MovetimeMs) * time.Millisecond
	if movetime <= 0 && cfg.MaxDepth <= 0 {
		movetime = DefaultMoveTime
	}
	if movetime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, movetime)
		defer cancel()
	}

	g := p.Geometry()
	var (
		depth   int32
		sendErr error
	)
	err = ai.NewEngine(cfg).SelectMove(ctx, ai.View(p), ai.EmitterFunc(func(m isolation.Move) {
		if sendErr != nil {
			return
		}
		depth++
		sendErr = stream.Send(&pb.Emission{Move: notation.FormatMove(g, m), Depth: depth})
	}))
	if err != nil {
		return engineError(err)
	}
	return sendErr
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.opt.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Error().Err(err).Msg("failed to listen")
		return subcommands.ExitFailure
	}
	log.Info().Int("port", c.port).Msg("listening")
	grpcServer := grpc.NewServer()
	pb.RegisterIsolationServer(grpcServer, NewServer(cfg))

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
