package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// AnyCategory — селектор "любая категория" в запросе викторины.
// Клиент кнопки "All" присылает id 0.
const AnyCategory uint = 0

// QuizService выбирает случайный вопрос для игровой сессии.
// Состояние сессии (id уже заданных вопросов) держит клиент и передает
// в каждом запросе; на сервере между вызовами ничего не хранится.
type QuizService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository

	// mu защищает rng: math/rand.Rand не потокобезопасен,
	// а DrawQuestion вызывается из параллельных HTTP-запросов
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizService создает новый сервис викторины
func NewQuizService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// DrawQuestion выбирает равновероятно один вопрос, подходящий под категорию
// (AnyCategory — без ограничения) и не входящий в previousIDs.
//
// Исходы различаются намеренно:
//   - несуществующая категория — ErrBadRequest, клиент может исправить запрос;
//   - пустое множество кандидатов — (nil, nil), исчерпание: нормальное
//     завершение сессии, вопросов больше не осталось.
func (s *QuizService) DrawQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	if categoryID != AnyCategory {
		if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("unknown quiz category %d: %w", categoryID, apperrors.ErrBadRequest)
			}
			return nil, fmt.Errorf("failed to resolve quiz category %d: %w", categoryID, err)
		}
	}

	eligible, err := s.questionRepo.Find(repository.QuestionFilter{
		CategoryID: categoryID,
		ExcludeIDs: previousIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load eligible questions: %w", err)
	}

	if len(eligible) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(eligible))
	s.mu.Unlock()

	question := eligible[idx]
	return &question, nil
}
