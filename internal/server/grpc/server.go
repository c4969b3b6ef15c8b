// Package grpc exposes the chat service over gRPC: unary account and
// messaging RPCs plus the server-streaming message delivery path.
package grpc

import (
	"context"
	"net"

	"github.com/mbaklanov/chatline/internal/logging"
	pb "github.com/mbaklanov/chatline/internal/proto"
	"github.com/mbaklanov/chatline/internal/server/chat"
	"github.com/mbaklanov/chatline/internal/server/users"
	"google.golang.org/grpc"
)

// userService is the slice of users.Service the transport needs.
type userService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (*users.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*users.TokenPair, error)
	RevokeAll(ctx context.Context, username string) error
	Authorize(tokenString string) (string, error)
}

// chatService is the slice of chat.Service the transport needs.
type chatService interface {
	ListUsernames(ctx context.Context) ([]string, error)
	Send(ctx context.Context, source, destination, text string) (chat.Outcome, error)
	DeleteAccount(ctx context.Context, username string) error
	OpenStream(ctx context.Context, username string, sink chat.Sink) error
}

type GRPCServer struct {
	pb.UnimplementedChatServiceServer
	address string
	users   userService
	chat    chatService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us userService, cs chatService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		chat:    cs,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.StreamInterceptor(s.accessTokenStreamInterceptor),
	)

	// registers service
	pb.RegisterChatServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
