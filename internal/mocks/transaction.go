package mocks

import (
	"context"

	"biblio/internal/domain/repository"
)

// RepositoryFactoryStub hands out the fixed repositories it was built with.
type RepositoryFactoryStub struct {
	Authors repository.AuthorRepository
	Books   repository.BookRepository
	Users   repository.UserRepository
	Loans   repository.LoanRepository
}

func (f *RepositoryFactoryStub) AuthorRepo() repository.AuthorRepository { return f.Authors }
func (f *RepositoryFactoryStub) BookRepo() repository.BookRepository     { return f.Books }
func (f *RepositoryFactoryStub) UserRepo() repository.UserRepository     { return f.Users }
func (f *RepositoryFactoryStub) LoanRepo() repository.LoanRepository     { return f.Loans }

// TxManagerStub runs the transactional callback directly against the stub
// factory, without any real transaction.
type TxManagerStub struct {
	Factory *RepositoryFactoryStub
}

func (tm *TxManagerStub) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.Factory)
}

var (
	_ repository.RepositoryFactory  = (*RepositoryFactoryStub)(nil)
	_ repository.TransactionManager = (*TxManagerStub)(nil)
)
