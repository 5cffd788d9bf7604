package sqlinline

const attachmentColumns = `
  id::text,
  case
    when trademark_id is not null then 'trademark'
    when trade_name_id is not null then 'tradename'
    else 'mercantile'
  end,
  coalesce(trademark_id, trade_name_id, mercantile_id)::text,
  filename,
  original_name,
  mime_type,
  size,
  path,
  created_at
from attachments
`

const QInsertAttachment = `--sql 0ab1def9-337e-4e67-9add-d92a2f983df3
insert into attachments(trademark_id, trade_name_id, mercantile_id, filename, original_name, mime_type, size, path)
values (
  case when $1::text = 'trademark' then $2::uuid end,
  case when $1::text = 'tradename' then $2::uuid end,
  case when $1::text = 'mercantile' then $2::uuid end,
  $3::text,
  $4::text,
  $5::text,
  $6::bigint,
  $7::text
)
returning id::text, created_at;
`

const QSelectAttachmentByID = `--sql aca12b59-d64d-4306-9a70-a390d9483c06
select` + attachmentColumns + `
where id = $1::uuid
limit 1;
`

const QListAttachmentsByAsset = `--sql c8414ef2-c68b-4a8e-a808-e78a1f1e0dbf
select` + attachmentColumns + `
where case $1::text
    when 'trademark' then trademark_id
    when 'tradename' then trade_name_id
    when 'mercantile' then mercantile_id
  end = $2::uuid
order by created_at asc;
`

const QListAttachmentsByAssets = `--sql 951723ad-907c-420b-80d9-f711679ec504
select` + attachmentColumns + `
where case $1::text
    when 'trademark' then trademark_id
    when 'tradename' then trade_name_id
    when 'mercantile' then mercantile_id
  end = any($2::uuid[])
order by created_at asc;
`

const QDeleteAttachment = `--sql da510257-9ce5-4060-a714-157bc67b2565
delete from attachments where id = $1::uuid;
`
