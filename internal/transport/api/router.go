package api

import (
	"time"

	"github.com/fsdevblog/groph-copurchase/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup           = "/api"
	MembersRegisterRoute = "/members/register"
	MemberPointsRoute    = "/members/:memberID/points"
	CopurchasingsRoute   = "/copurchasings"
	CopurchasingRoute    = "/copurchasings/:copurchasingID"
	ParticipateRoute     = "/copurchasings/participate"
	ParticipationsRoute  = "/copurchasings/participations"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	MemberService       MemberServicer
	CopurchasingService CopurchasingServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	membersHandler := NewMembersHandler(args.MemberService)
	copurchasingsHandler := NewCopurchasingsHandler(args.CopurchasingService)

	api := r.Group(RouteGroup)

	api.POST(MembersRegisterRoute, membersHandler.Register)
	api.GET(MemberPointsRoute, membersHandler.Points)

	api.POST(CopurchasingsRoute, copurchasingsHandler.Create)
	api.DELETE(CopurchasingRoute, copurchasingsHandler.Delete)
	api.POST(ParticipateRoute, copurchasingsHandler.Participate)
	api.DELETE(ParticipationsRoute, copurchasingsHandler.CancelParticipation)

	return r, nil
}
