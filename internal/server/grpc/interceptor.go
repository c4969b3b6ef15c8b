package grpc

import (
	"context"

	"github.com/mbaklanov/chatline/internal/common"
	pb "github.com/mbaklanov/chatline/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const usernameKey ctxKey = "username"

// publicMethods can be called without an access token: everything a client
// needs before (or in order to) authenticate.
var publicMethods = map[string]bool{
	pb.ChatService_CreateAccount_FullMethodName: true,
	pb.ChatService_Login_FullMethodName:         true,
	pb.ChatService_RefreshToken_FullMethodName:  true,
}

// authorize extracts and validates the access token from the incoming
// metadata, returning the username it was issued for.
func (s *GRPCServer) authorize(ctx context.Context) (string, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}

	username, err := s.users.Authorize(accessToken)
	if err != nil {
		return "", status.Error(codes.Unauthenticated, err.Error())
	}
	return username, nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !publicMethods[info.FullMethod] {
		username, err := s.authorize(ctx)
		if err != nil {
			return nil, err
		}
		ctx = context.WithValue(ctx, usernameKey, username)
	}

	return handler(ctx, req)
}

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	if publicMethods[info.FullMethod] {
		return handler(srv, ss)
	}

	username, err := s.authorize(ss.Context())
	if err != nil {
		return err
	}

	wrapped := &authedStream{
		ServerStream: ss,
		ctx:          context.WithValue(ss.Context(), usernameKey, username),
	}
	return handler(srv, wrapped)
}

// authedStream overrides Context so the handler sees the authenticated
// username.
type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authedStream) Context() context.Context { return s.ctx }

// usernameFromContext returns the username the interceptor stored after
// token validation.
func usernameFromContext(ctx context.Context) (string, error) {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok || username == "" {
		return "", status.Error(codes.Unauthenticated, "missing identity")
	}
	return username, nil
}
