package grpc

import (
	"context"
	"errors"

	"github.com/mbaklanov/chatline/internal/common"
	pb "github.com/mbaklanov/chatline/internal/proto"
	"github.com/mbaklanov/chatline/internal/server/chat"
	"github.com/mbaklanov/chatline/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError translates the service sentinels into gRPC status codes.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrUsernameTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrUnknownUser), errors.Is(err, common.ErrUnknownDestination):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrWrongCredential),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.Credentials) (*pb.Response, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	if err := s.users.Register(ctx, req.Username, req.Password); err != nil {
		s.logger.Error(ctx, "registration failed", "username", req.Username, "error", err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.Response{Status: true, Msg: "account created"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.Credentials) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.LoginResponse{
		Status:       true,
		Msg:          "logged in",
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.LoginResponse{
		Status:       true,
		Msg:          "refreshed",
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	usernames, err := s.chat.ListUsernames(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.ListUsersResponse{Usernames: usernames}, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {

	source, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	outcome, err := s.chat.Send(ctx, source, req.DstUsername, req.Text)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.SendMessageResponse{
		Status: true,
		Msg:    outcome.String(),
		Queued: outcome == chat.QueuedOffline,
	}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*pb.Response, error) {

	username, err := usernameFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.chat.DeleteAccount(ctx, username); err != nil {
		return nil, statusFromError(err)
	}
	if err := s.users.RevokeAll(ctx, username); err != nil {
		s.logger.Error(ctx, "revoking refresh tokens failed", "username", username, "error", err.Error())
	}

	s.logger.Info(ctx, "Account deleted", "username", username)
	return &pb.Response{Status: true, Msg: "account deleted"}, nil
}

// messageSink adapts the gRPC server stream to the chat.Sink the delivery
// stream writes into.
type messageSink struct {
	stream grpc.ServerStreamingServer[pb.ChatMessage]
}

func (s *messageSink) Send(m *models.Message) error {
	return s.stream.Send(&pb.ChatMessage{
		SrcUsername: m.Source,
		DstUsername: m.Destination,
		Text:        m.Text,
	})
}

func (s *GRPCServer) MessageStream(req *pb.StreamRequest, stream grpc.ServerStreamingServer[pb.ChatMessage]) error {

	ctx := stream.Context()

	username, err := usernameFromContext(ctx)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Message stream opened", "username", username)

	err = s.chat.OpenStream(ctx, username, &messageSink{stream: stream})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrSessionSuperseded):
		return status.Error(codes.Aborted, "session superseded by a newer login")
	case errors.Is(err, context.Canceled), errors.Is(err, common.ErrChannelClosed):
		// client went away, nothing to report
		return nil
	default:
		return statusFromError(err)
	}
}
