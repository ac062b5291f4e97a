package catalogService

import (
	"camonk/internal/api/catalog"
	"camonk/internal/entity"
)

type ICatalogService interface {
	GetPracticeTests() []entity.PracticeTest
	GetJobs() []entity.Job
	GetProfile() entity.Profile
}

type catalogService struct{}

func NewCatalogService() ICatalogService {
	return &catalogService{}
}

func (s *catalogService) GetPracticeTests() []entity.PracticeTest {
	return catalog.PracticeTests()
}

func (s *catalogService) GetJobs() []entity.Job {
	return catalog.Jobs()
}

func (s *catalogService) GetProfile() entity.Profile {
	return catalog.Profile()
}
