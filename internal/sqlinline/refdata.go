package sqlinline

const QListVerticals = `--sql 17c68d3e-02f7-4636-aa3b-2066d42c2c40
select id::text, slug, name
from verticals
order by name asc;
`

const QListCountries = `--sql 29cf9a07-8bb6-4d04-87e7-eac656930f97
select id::text, code, name
from countries
order by name asc;
`

const QListEntities = `--sql 72e53a84-0c1c-4de6-8620-3cf3e2d258bf
select id::text, name, rnc, type
from entities
order by name asc;
`

const QInsertEntity = `--sql 4505bbf4-b7f1-4c0f-95c0-1f92c6e654c8
insert into entities(name, rnc, type)
values ($1::text, $2::text, $3::text)
returning id::text;
`

const QUpsertVertical = `--sql e3cdd8c8-95fb-4b11-af7d-d469c82ffc45
insert into verticals(slug, name)
values ($1::text, $2::text)
on conflict (slug) do nothing;
`

const QUpsertCountry = `--sql 5c10c1cf-98b7-430c-982b-0f088d69fdb6
insert into countries(code, name)
values ($1::text, $2::text)
on conflict (code) do nothing;
`
