package accountservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/pkg/errorspkg"
	"github.com/go-fin/fin-api/pkg/randompkg"
)

func TestCreate(t *testing.T) {
	cpf := randompkg.CPF()
	name := randompkg.Owner()

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo)
		checkResponse func(account domain.Account, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, account domain.Account) (domain.Account, error) {
						require.NotEmpty(t, account.ID)
						require.Equal(t, cpf, account.CPF)
						require.Equal(t, name, account.Name)
						require.NotNil(t, account.Statement)
						require.Empty(t, account.Statement)

						return account, nil
					})
			},
			checkResponse: func(account domain.Account, err error) {
				require.NoError(t, err)
				require.NotEmpty(t, account.ID)
				require.Equal(t, cpf, account.CPF)
			},
		},
		{
			name: "AlreadyExists",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.ErrCustomerAlreadyExists)
			},
			checkResponse: func(account domain.Account, err error) {
				require.EqualError(t, err, domain.ErrCustomerAlreadyExists.Error())
				require.Empty(t, account)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			account, err := service.Create(context.Background(), cpf, name)
			tc.checkResponse(account, err)
		})
	}
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepo(ctrl)
	service := New(repo)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, account domain.Account) (domain.Account, error) {
			return account, nil
		})

	first, err := service.Create(context.Background(), randompkg.CPF(), randompkg.Owner())
	require.NoError(t, err)

	second, err := service.Create(context.Background(), randompkg.CPF(), randompkg.Owner())
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
}

func TestGet(t *testing.T) {
	cpf := randompkg.CPF()
	account := domain.Account{
		ID:        randompkg.String(32),
		CPF:       cpf,
		Name:      randompkg.Owner(),
		Statement: []domain.Transaction{},
	}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo)
		checkResponse func(got domain.Account, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(cpf)).
					Times(1).
					Return(account, nil)
			},
			checkResponse: func(got domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, account, got)
			},
		},
		{
			name: "NotFound",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(cpf)).
					Times(1).
					Return(domain.Account{}, domain.ErrCustomerNotFound)
			},
			checkResponse: func(got domain.Account, err error) {
				require.EqualError(t, err, domain.ErrCustomerNotFound.Error())
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			got, err := service.Get(context.Background(), cpf)
			tc.checkResponse(got, err)
		})
	}
}

func TestUpdateName(t *testing.T) {
	cpf := randompkg.CPF()
	newName := randompkg.Owner()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepo(ctrl)
	service := New(repo)

	repo.EXPECT().
		UpdateName(gomock.Any(), gomock.Eq(cpf), gomock.Eq(newName)).
		Times(1).
		Return(domain.Account{CPF: cpf, Name: newName}, nil)

	account, err := service.UpdateName(context.Background(), cpf, newName)
	require.NoError(t, err)
	require.Equal(t, newName, account.Name)
}

func TestDelete(t *testing.T) {
	cpf := randompkg.CPF()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepo(ctrl)
	service := New(repo)

	repo.EXPECT().Delete(gomock.Any(), gomock.Eq(cpf)).Times(1).Return(nil)
	require.NoError(t, service.Delete(context.Background(), cpf))

	repo.EXPECT().Delete(gomock.Any(), gomock.Eq(cpf)).Times(1).Return(errorspkg.ErrInternal)
	require.EqualError(t, service.Delete(context.Background(), cpf), errorspkg.ErrInternal.Error())
}
