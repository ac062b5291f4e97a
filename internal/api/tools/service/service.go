package toolsService

import (
	"camonk/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IToolsService interface {
	CalculateIncomeTax(income float64) (float64, error)
	ParseIncome(raw string) (float64, error)
	FormatRupees(amount float64) string
}

type toolsService struct {
	log   *logrus.Logger
	utils utils.IUtils
}

func NewToolsService(log *logrus.Logger, utils utils.IUtils) IToolsService {
	return &toolsService{
		log:   log,
		utils: utils,
	}
}
