// Package client wraps the generated gRPC client: it owns the connection,
// attaches the access token to outgoing calls, and transparently refreshes
// an expired token once before giving up.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mbaklanov/chatline/internal/common"
	pb "github.com/mbaklanov/chatline/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.ChatServiceClient
	username     string
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// refreshTokens exchanges the stored refresh token for a fresh pair.
func (s *GRPCClient) refreshTokens(ctx context.Context) error {
	if s.refreshToken == "" {
		return ErrUnauthorized
	}
	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
	if err != nil {
		return err
	}
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	return nil
}

// isExpiredTokenErr reports whether err is the server telling us the access
// token expired, as opposed to any other authentication failure.
func isExpiredTokenErr(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil || !isExpiredTokenErr(err) {
		return err
	}

	if err := s.refreshTokens(ctx); err != nil {
		return err
	}

	// tokens refreshed, retry once with the new access token
	ctx = withAccessToken(ctx, s.accessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewChatClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewChatServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) error {
	_, err := s.client.CreateAccount(ctx, &pb.Credentials{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) error {
	resp, err := s.client.Login(ctx, &pb.Credentials{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.username = username
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	return nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]string, error) {
	resp, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Usernames, nil
}

// SendMessage routes text to dstUsername. The returned flag reports whether
// the message was queued for an offline recipient rather than delivered live.
func (s *GRPCClient) SendMessage(ctx context.Context, dstUsername, text string) (bool, error) {
	resp, err := s.client.SendMessage(ctx, &pb.SendMessageRequest{DstUsername: dstUsername, Text: text})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Queued, nil
}

func (s *GRPCClient) DeleteAccount(ctx context.Context) error {
	_, err := s.client.DeleteAccount(ctx, &pb.DeleteAccountRequest{})
	if err != nil {
		return s.mapError(err)
	}
	s.Logout()
	return nil
}

// Listen opens the server-side message stream and invokes deliver for every
// incoming message until ctx ends or the stream breaks. Unary interceptors
// do not cover streams, so the token is attached here.
func (s *GRPCClient) Listen(ctx context.Context, deliver func(srcUsername, text string)) error {
	stream, err := s.client.MessageStream(withAccessToken(ctx, s.accessToken), &pb.StreamRequest{})
	if err != nil {
		return s.mapError(err)
	}

	for {
		m, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return s.mapError(err)
		}
		deliver(m.SrcUsername, m.Text)
	}
}

// Username returns the identity of the current login, empty when logged out.
func (s *GRPCClient) Username() string { return s.username }

// Logout drops the stored identity and tokens. Purely client-side: the
// server keeps no per-connection login state for unary calls.
func (s *GRPCClient) Logout() {
	s.username = ""
	s.accessToken = ""
	s.refreshToken = ""
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return ErrInvalidInput
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
