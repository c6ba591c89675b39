package service

import (
	"fmt"

	"github.com/fsdevblog/groph-copurchase/pkg/uow"
)

type AppServices struct {
	MemberService       *MemberService
	CopurchasingService *CopurchasingService
}

func Factory(unitOfWork uow.UOW, writerAutoJoin bool) (*AppServices, error) {
	memberService, memberServiceErr := NewMemberService(unitOfWork)
	if memberServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", memberServiceErr.Error())
	}

	copurchasingService, copurchasingServiceErr := NewCopurchasingService(unitOfWork, writerAutoJoin)
	if copurchasingServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", copurchasingServiceErr.Error())
	}

	return &AppServices{
		MemberService:       memberService,
		CopurchasingService: copurchasingService,
	}, nil
}
